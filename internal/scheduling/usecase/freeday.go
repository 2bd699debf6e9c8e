package usecase

import (
	"context"

	"later-reminder/internal/classify"
	"later-reminder/internal/model"
)

// selectFreeDay walks the search range in ascending order and returns
// the first day that carries a holiday signal or no work-scheduled
// signal. The walk never starts before today even when the requested
// range does.
func (uc *implUseCase) selectFreeDay(ctx context.Context, events []model.CalendarEvent, rules classify.Rules, fromDay, toDay, today string) (string, bool) {
	holidayDays := map[string]bool{}
	workDays := map[string]bool{}

	for _, event := range events {
		dayKey := uc.eventDayKey(event)
		if dayKey == "" {
			continue
		}
		if classify.IsHoliday(event, rules) {
			holidayDays[dayKey] = true
		}
		if classify.IsWorkScheduled(event, rules) {
			workDays[dayKey] = true
		}
	}

	start := fromDay
	if start < today {
		start = today
	}
	days, err := uc.cal.Days(start, toDay)
	if err != nil {
		// Both bounds were validated upstream, so this only fires on
		// a programming error. Surface it instead of hiding it behind
		// the not-found result.
		uc.l.Warnf(ctx, "free-day walk failed for %s..%s: %v", start, toDay, err)
		return "", false
	}

	for _, day := range days {
		if holidayDays[day] || !workDays[day] {
			return day, true
		}
	}
	return "", false
}

func (uc *implUseCase) eventDayKey(event model.CalendarEvent) string {
	if event.AllDay {
		return uc.cal.ExtractDayKey(event.StartDate)
	}
	if event.StartTime.IsZero() {
		return ""
	}
	return uc.cal.DayKey(event.StartTime)
}
