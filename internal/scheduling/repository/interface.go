package repository

import (
	"context"

	"later-reminder/internal/model"
)

// CalendarRepository is the interface for calendar event access.
type CalendarRepository interface {
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.CalendarEvent, error)
}

// ReminderRepository is the interface for the reminder store.
type ReminderRepository interface {
	// EnsureAuthorized verifies the store can be used at all.
	EnsureAuthorized(ctx context.Context) error
	// ListNames returns the available reminder list names.
	ListNames(ctx context.Context) ([]string, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, opt CreateReminderOptions) error
}
