package remind

import (
	"context"
	"fmt"

	"later-reminder/internal/model"
	"later-reminder/internal/scheduling"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/pkg/remindctl"
)

// EnsureAuthorized verifies the reminders backend grants access.
func (r *implRepository) EnsureAuthorized(ctx context.Context) error {
	status, err := r.client.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check reminder store status: %w", err)
	}
	if !status.Authorized {
		return scheduling.ErrNotAuthorized
	}
	return nil
}

// ListNames returns the available reminder list names.
func (r *implRepository) ListNames(ctx context.Context) ([]string, error) {
	lists, err := r.client.Lists(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lists))
	for _, list := range lists {
		names = append(names, list.Title)
	}
	return names, nil
}

// ListReminders returns reminders in the named list, or every reminder
// when no list is given.
func (r *implRepository) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	raw, err := r.client.Reminders(ctx, opt.List)
	if err != nil {
		return nil, err
	}

	reminders := make([]model.Reminder, 0, len(raw))
	for _, item := range raw {
		reminders = append(reminders, model.Reminder{
			ID:      item.ID,
			Title:   item.Title,
			DueDate: item.DueDate,
			List:    item.List,
		})
	}
	r.l.Debugf(ctx, "remind: listed %d reminders (list=%q)", len(reminders), opt.List)
	return reminders, nil
}

// CreateReminder creates the reminder in the store.
func (r *implRepository) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) error {
	return r.client.Add(ctx, remindctl.AddRequest{
		Title: opt.Title,
		Due:   opt.DueDateTime,
		List:  opt.List,
		Notes: opt.Notes,
	})
}
