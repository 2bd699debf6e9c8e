package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DayFormat is the canonical calendar-day key layout.
	DayFormat = "2006-01-02"
	// ClockFormat is the canonical time-of-day layout.
	ClockFormat = "15:04"

	// LastSlotMinute is the latest representable slot of a day (23:45).
	LastSlotMinute = 23*60 + 45
)

var clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// Calendar converts between timestamps, day keys, and minutes-of-day in
// a fixed IANA timezone. Two timestamps on the same local calendar day
// always produce the same day key.
type Calendar struct {
	location *time.Location
}

// New creates a Calendar for the given IANA timezone string, e.g. "Asia/Tokyo".
func New(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// NewLocal creates a Calendar in the process-local timezone.
func NewLocal() *Calendar {
	return &Calendar{location: time.Local}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// DayKey returns the YYYY-MM-DD key of t in the calendar's timezone.
func (c *Calendar) DayKey(t time.Time) string {
	return t.In(c.location).Format(DayFormat)
}

// Today returns the day key of now in the calendar's timezone.
func (c *Calendar) Today(now time.Time) string {
	return c.DayKey(now)
}

// ParseDay validates a YYYY-MM-DD string and returns midnight of that
// day in the calendar's timezone.
func (c *Calendar) ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, day, c.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD: %w", day, err)
	}
	return t, nil
}

// AddDays shifts a day key by n calendar days.
func (c *Calendar) AddDays(day string, n int) (string, error) {
	t, err := c.ParseDay(day)
	if err != nil {
		return "", err
	}
	return c.DayKey(t.AddDate(0, 0, n)), nil
}

// Days returns every day key from fromDay through toDay inclusive, in
// ascending order. An inverted range yields nil.
func (c *Calendar) Days(fromDay, toDay string) ([]string, error) {
	from, err := c.ParseDay(fromDay)
	if err != nil {
		return nil, err
	}
	to, err := c.ParseDay(toDay)
	if err != nil {
		return nil, err
	}

	var out []string
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		out = append(out, c.DayKey(cur))
	}
	return out, nil
}

// DayAndMinute splits a timestamp into its local day key and
// minute-of-day.
func (c *Calendar) DayAndMinute(t time.Time) (string, int) {
	local := t.In(c.location)
	return local.Format(DayFormat), local.Hour()*60 + local.Minute()
}

// At combines a day key and minute-of-day into a concrete local time.
func (c *Calendar) At(day string, minute int) (time.Time, error) {
	t, err := c.ParseDay(day)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(time.Duration(minute) * time.Minute), nil
}

// ExtractDayKey normalizes either a bare YYYY-MM-DD value or any
// parseable timestamp to a day key. Unparseable input yields "".
func (c *Calendar) ExtractDayKey(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if _, err := time.ParseInLocation(DayFormat, value, c.location); err == nil {
		return value
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	} {
		if t, err := time.ParseInLocation(layout, value, c.location); err == nil {
			return c.DayKey(t)
		}
	}
	return ""
}

// ParseStamp splits a timestamp string into its local day key and
// minute-of-day. A bare date counts as minute 0. Unparseable input
// reports ok=false.
func (c *Calendar) ParseStamp(value string) (day string, minute int, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", 0, false
	}
	if t, err := time.ParseInLocation(DayFormat, value, c.location); err == nil {
		return c.DayKey(t), 0, true
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	} {
		if t, err := time.ParseInLocation(layout, value, c.location); err == nil {
			day, minute := c.DayAndMinute(t)
			return day, minute, true
		}
	}
	return "", 0, false
}

// ParseClock validates an HH:MM string and returns its minute-of-day.
func ParseClock(clock string) (int, error) {
	if !clockPattern.MatchString(clock) {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", clock)
	}
	hh, _ := strconv.Atoi(clock[:2])
	mm, _ := strconv.Atoi(clock[3:])
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hh*60 + mm, nil
}

// FormatClock renders a minute-of-day as HH:MM, clamped to the day's
// last representable slot.
func FormatClock(minute int) string {
	minute = ClampInt(minute, 0, LastSlotMinute)
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ClampInt bounds n to [min, max].
func ClampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
