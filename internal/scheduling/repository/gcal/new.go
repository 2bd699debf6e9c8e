package gcal

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"later-reminder/internal/model"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/pkg/datemath"
	"later-reminder/pkg/gcalendar"
	pkgLog "later-reminder/pkg/log"
)

// EventLister is the slice of the Google Calendar client that this
// repository consumes.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implRepository struct {
	l      pkgLog.Logger
	client EventLister
	cal    *datemath.Calendar
	cache  *expirable.LRU[string, []model.CalendarEvent]
}

var _ repository.CalendarRepository = (*implRepository)(nil)

// New creates a calendar repository over the Google Calendar client.
// Query results are cached briefly so repeated plans in serve mode do
// not hammer the API.
func New(l pkgLog.Logger, client EventLister, cal *datemath.Calendar) *implRepository {
	return &implRepository{
		l:      l,
		client: client,
		cal:    cal,
		cache:  expirable.NewLRU[string, []model.CalendarEvent](64, nil, time.Minute),
	}
}
