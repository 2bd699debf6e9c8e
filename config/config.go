package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Later Reminder specifics
	GoogleCalendar GoogleCalendarConfig
	Remindctl      RemindctlConfig
	Scheduling     SchedulingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type RemindctlConfig struct {
	Bin string
}

// SchedulingConfig holds the default classification rules and slot
// preferences. Requests may override any of them per call.
type SchedulingConfig struct {
	EventTypes      []string
	SummaryKeywords []string
	WorkKeywords    []string
	AllDayOnly      bool

	DueTime     string
	RangeDays   int
	Timezone    string
	ProfilePath string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// remindctl
	cfg.Remindctl.Bin = viper.GetString("remindctl.bin")
	if bin := viper.GetString("remindctl_bin"); bin != "" {
		cfg.Remindctl.Bin = bin
	}

	// Scheduling
	cfg.Scheduling.EventTypes = splitCSV(viper.GetString("scheduling.event_types"))
	cfg.Scheduling.SummaryKeywords = splitCSV(viper.GetString("scheduling.summary_keywords"))
	cfg.Scheduling.WorkKeywords = splitCSV(viper.GetString("scheduling.work_keywords"))
	cfg.Scheduling.AllDayOnly = viper.GetBool("scheduling.all_day_only")
	cfg.Scheduling.DueTime = viper.GetString("scheduling.due_time")
	cfg.Scheduling.RangeDays = viper.GetInt("scheduling.range_days")
	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.ProfilePath = viper.GetString("scheduling.profile_path")
	if cfg.Scheduling.ProfilePath == "" {
		cfg.Scheduling.ProfilePath = DefaultProfilePath()
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("remindctl.bin", "remindctl")

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("scheduling.event_types", "outOfOffice")
	viper.SetDefault("scheduling.summary_keywords", "休み,休日,有給,off,vacation")
	viper.SetDefault("scheduling.work_keywords", "研究室")
	viper.SetDefault("scheduling.all_day_only", false)
	viper.SetDefault("scheduling.due_time", "14:00")
	viper.SetDefault("scheduling.range_days", 120)
	viper.SetDefault("scheduling.timezone", "Asia/Tokyo")
}

// DefaultProfilePath returns the per-user profile location, falling
// back to the working directory when no home is known.
func DefaultProfilePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "later-reminder", "profile.json")
	}
	return "profile.json"
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
