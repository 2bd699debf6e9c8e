package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling/usecase"
	"later-reminder/pkg/datemath"
	"later-reminder/pkg/gcalendar"
	"later-reminder/pkg/log"
	"later-reminder/pkg/remindctl"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Scheduling domain
	calendarClient *gcalendar.Client
	remindClient   *remindctl.Client
	profiles       *profile.Store
	cal            *datemath.Calendar
	schedConfig    usecase.Config

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Scheduling domain
	CalendarClient *gcalendar.Client
	RemindClient   *remindctl.Client
	Profiles       *profile.Store
	Calendar       *datemath.Calendar
	SchedConfig    usecase.Config

	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		calendarClient:  cfg.CalendarClient,
		remindClient:    cfg.RemindClient,
		profiles:        cfg.Profiles,
		cal:             cfg.Calendar,
		schedConfig:     cfg.SchedConfig,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarClient == nil {
		return errors.New("calendar client is required")
	}
	if srv.remindClient == nil {
		return errors.New("remind client is required")
	}
	if srv.profiles == nil {
		return errors.New("profile store is required")
	}
	if srv.cal == nil {
		return errors.New("calendar is required")
	}
	return nil
}
