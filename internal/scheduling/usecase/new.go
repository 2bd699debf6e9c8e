package usecase

import (
	"time"

	"later-reminder/internal/classify"
	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/pkg/datemath"
	pkgLog "later-reminder/pkg/log"
)

// Config carries the configured scheduling defaults. Request fields
// override these per call.
type Config struct {
	CalendarID string        // default "primary"
	DueTime    string        // preferred HH:MM slot, default "14:00"
	RangeDays  int           // search horizon in days, default 120
	Rules      classify.Rules

	// Now supplies the current time; nil means time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	calRepo  repository.CalendarRepository
	remRepo  repository.ReminderRepository
	profiles *profile.Store
	cal      *datemath.Calendar
	cfg      Config
}

var _ scheduling.UseCase = (*implUseCase)(nil)

// New creates a new scheduling UseCase instance.
func New(
	l pkgLog.Logger,
	calRepo repository.CalendarRepository,
	remRepo repository.ReminderRepository,
	profiles *profile.Store,
	cal *datemath.Calendar,
	cfg Config,
) *implUseCase {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.DueTime == "" {
		cfg.DueTime = "14:00"
	}
	if cfg.RangeDays <= 0 {
		cfg.RangeDays = 120
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		l:        l,
		calRepo:  calRepo,
		remRepo:  remRepo,
		profiles: profiles,
		cal:      cal,
		cfg:      cfg,
	}
}
