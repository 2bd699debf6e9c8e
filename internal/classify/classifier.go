package classify

import (
	"strings"

	"later-reminder/internal/model"
)

// Rules configures how calendar events are classified into holiday and
// work-scheduled signals. All matching is case-insensitive substring
// matching; an empty rule set for a category never matches.
type Rules struct {
	EventTypes      []string // event types counted as holiday markers
	SummaryKeywords []string // summary substrings counted as holiday markers
	WorkKeywords    []string // summary substrings marking a day as work-scheduled
	AllDayOnly      bool     // only all-day events can be holiday markers
}

// Normalized returns a copy with every rule entry trimmed and
// lowercased. Apply once before classifying a batch of events.
func (r Rules) Normalized() Rules {
	return Rules{
		EventTypes:      normalize(r.EventTypes),
		SummaryKeywords: normalize(r.SummaryKeywords),
		WorkKeywords:    normalize(r.WorkKeywords),
		AllDayOnly:      r.AllDayOnly,
	}
}

func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// IsHoliday reports whether the event counts as a holiday signal:
// its event type is listed, or its summary contains a holiday keyword.
// Either condition alone is sufficient. Cancelled events never match;
// with AllDayOnly set, timed events never match.
func IsHoliday(event model.CalendarEvent, rules Rules) bool {
	if event.Cancelled() {
		return false
	}
	if rules.AllDayOnly && !event.AllDay {
		return false
	}

	eventType := strings.ToLower(event.EventType)
	for _, t := range rules.EventTypes {
		if eventType == t {
			return true
		}
	}

	summary := strings.ToLower(event.Summary)
	for _, keyword := range rules.SummaryKeywords {
		if strings.Contains(summary, keyword) {
			return true
		}
	}
	return false
}

// IsWorkScheduled reports whether the event marks its day as
// work-scheduled. Cancelled events never match; AllDayOnly does not
// apply here.
func IsWorkScheduled(event model.CalendarEvent, rules Rules) bool {
	if event.Cancelled() {
		return false
	}

	summary := strings.ToLower(event.Summary)
	for _, keyword := range rules.WorkKeywords {
		if strings.Contains(summary, keyword) {
			return true
		}
	}
	return false
}
