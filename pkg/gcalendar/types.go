package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// AllDay is true iff the event carries a pure start date with no time
// component.
type Event struct {
	ID        string
	Summary   string
	Status    string // e.g. "confirmed", "cancelled"
	EventType string // e.g. "default", "outOfOffice"
	AllDay    bool
	StartDate string // YYYY-MM-DD when AllDay
	StartTime time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
