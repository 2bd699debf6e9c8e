package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"later-reminder/internal/classify"
	"later-reminder/internal/model"
	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/internal/scheduling/usecase"
	"later-reminder/pkg/datemath"
	pkgLog "later-reminder/pkg/log"
)

type fakeCalendarRepo struct {
	events  []model.CalendarEvent
	err     error
	lastOpt repository.ListEventsOptions
}

func (f *fakeCalendarRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	f.lastOpt = opt
	return f.events, f.err
}

type fakeReminderRepo struct {
	authErr   error
	names     []string
	namesErr  error
	reminders []model.Reminder
	listErr   error
	created   []repository.CreateReminderOptions
	createErr error
}

func (f *fakeReminderRepo) EnsureAuthorized(ctx context.Context) error {
	return f.authErr
}

func (f *fakeReminderRepo) ListNames(ctx context.Context) ([]string, error) {
	return f.names, f.namesErr
}

func (f *fakeReminderRepo) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	return f.reminders, f.listErr
}

func (f *fakeReminderRepo) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, opt)
	return nil
}

type fixture struct {
	cal      *fakeCalendarRepo
	rem      *fakeReminderRepo
	profiles *profile.Store
	uc       scheduling.UseCase
}

// fixedNow is the reference clock for every scenario: a Monday morning
// in Tokyo, day key 2025-06-02.
func fixedNow(t *testing.T) (time.Time, *datemath.Calendar) {
	t.Helper()
	cal, err := datemath.New("Asia/Tokyo")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	return time.Date(2025, 6, 2, 9, 0, 0, 0, cal.Location()), cal
}

func defaultRules() classify.Rules {
	return classify.Rules{
		EventTypes:      []string{"outofoffice"},
		SummaryKeywords: []string{"休み", "休日", "有給", "off", "vacation"},
		WorkKeywords:    []string{"研究室"},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now, cal := fixedNow(t)

	calRepo := &fakeCalendarRepo{}
	remRepo := &fakeReminderRepo{}
	profiles := profile.NewStore(filepath.Join(t.TempDir(), "profile.json"), pkgLog.NewNop())

	uc := usecase.New(pkgLog.NewNop(), calRepo, remRepo, profiles, cal, usecase.Config{
		DueTime:   "14:00",
		RangeDays: 120,
		Rules:     defaultRules(),
		Now:       func() time.Time { return now },
	})

	return &fixture{cal: calRepo, rem: remRepo, profiles: profiles, uc: uc}
}

func workEvent(day string) model.CalendarEvent {
	return model.CalendarEvent{Summary: "研究室ミーティング", AllDay: true, StartDate: day}
}
