package remind

import (
	"context"

	"later-reminder/internal/scheduling/repository"
	pkgLog "later-reminder/pkg/log"
	"later-reminder/pkg/remindctl"
)

// Store is the slice of the remindctl client that this repository
// consumes.
type Store interface {
	Status(ctx context.Context) (remindctl.Status, error)
	Lists(ctx context.Context) ([]remindctl.List, error)
	Reminders(ctx context.Context, listName string) ([]remindctl.Reminder, error)
	Add(ctx context.Context, req remindctl.AddRequest) error
}

type implRepository struct {
	l      pkgLog.Logger
	client Store
}

var _ repository.ReminderRepository = (*implRepository)(nil)

// New creates a reminder repository over the remindctl client.
func New(l pkgLog.Logger, client Store) *implRepository {
	return &implRepository{l: l, client: client}
}
