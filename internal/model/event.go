package model

import "time"

// CalendarEvent is a normalized calendar entry as consumed by the
// scheduling engine.
type CalendarEvent struct {
	ID        string
	Summary   string
	Status    string // "cancelled" events are ignored everywhere
	EventType string
	AllDay    bool   // true iff the event has a pure date and no time component
	StartDate string // YYYY-MM-DD when AllDay
	StartTime time.Time
}

// Cancelled reports whether the event was cancelled.
func (e CalendarEvent) Cancelled() bool {
	return e.Status == "cancelled"
}
