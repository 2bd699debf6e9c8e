package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"later-reminder/config"
	_ "later-reminder/docs" // Swagger docs
	"later-reminder/internal/classify"
	"later-reminder/internal/httpserver"
	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling/usecase"
	"later-reminder/pkg/datemath"
	"later-reminder/pkg/gcalendar"
	"later-reminder/pkg/log"
	"later-reminder/pkg/remindctl"
)

// @title       Later Reminder API
// @description Schedules one reminder for a free day detected from calendar signals, with learned duration and spacing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Later Reminder API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Local calendar math
	cal, err := datemath.New(cfg.Scheduling.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to local: %v", cfg.Scheduling.Timezone, err)
		cal = datemath.NewLocal()
	}

	// 4. Google Calendar client
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar not available: %v", err)
		logger.Error(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}

	// 5. Reminder store client
	remindClient := remindctl.NewClient(cfg.Remindctl.Bin)

	// 6. Learning profile store
	profiles := profile.NewStore(cfg.Scheduling.ProfilePath, logger)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CalendarClient: calendarClient,
		RemindClient:   remindClient,
		Profiles:       profiles,
		Calendar:       cal,
		SchedConfig: usecase.Config{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			DueTime:    cfg.Scheduling.DueTime,
			RangeDays:  cfg.Scheduling.RangeDays,
			Rules: classify.Rules{
				EventTypes:      cfg.Scheduling.EventTypes,
				SummaryKeywords: cfg.Scheduling.SummaryKeywords,
				WorkKeywords:    cfg.Scheduling.WorkKeywords,
				AllDayOnly:      cfg.Scheduling.AllDayOnly,
			},
			Now: time.Now,
		},
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
