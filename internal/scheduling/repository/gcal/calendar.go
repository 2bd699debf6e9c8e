package gcal

import (
	"context"
	"fmt"

	"later-reminder/internal/model"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/pkg/gcalendar"
)

// ListEvents returns normalized events for every day in the range,
// inclusive on both ends.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.CalendarEvent, error) {
	calendarID := opt.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	cacheKey := calendarID + "|" + opt.FromDay + "|" + opt.ToDay
	if cached, ok := r.cache.Get(cacheKey); ok {
		r.l.Debugf(ctx, "gcal: cache hit for %s", cacheKey)
		return cached, nil
	}

	timeMin, err := r.cal.ParseDay(opt.FromDay)
	if err != nil {
		return nil, fmt.Errorf("invalid range start: %w", err)
	}
	endDay, err := r.cal.ParseDay(opt.ToDay)
	if err != nil {
		return nil, fmt.Errorf("invalid range end: %w", err)
	}
	// The API upper bound is exclusive; include the whole end day.
	timeMax := endDay.AddDate(0, 0, 1)

	raw, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		return nil, fmt.Errorf("calendar query failed: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, model.CalendarEvent{
			ID:        ev.ID,
			Summary:   ev.Summary,
			Status:    ev.Status,
			EventType: ev.EventType,
			AllDay:    ev.AllDay,
			StartDate: ev.StartDate,
			StartTime: ev.StartTime,
		})
	}

	r.cache.Add(cacheKey, events)
	r.l.Debugf(ctx, "gcal: fetched %d events for %s", len(events), cacheKey)
	return events, nil
}
