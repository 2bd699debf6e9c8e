package datemath_test

import (
	"testing"
	"time"

	"later-reminder/pkg/datemath"
)

func TestNew(t *testing.T) {
	_, err := datemath.New("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}

	_, err = datemath.New("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestDayKeyIsStableAcrossTimesOfDay(t *testing.T) {
	cal, _ := datemath.New("UTC")

	morning := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	night := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)

	if cal.DayKey(morning) != cal.DayKey(night) {
		t.Errorf("same local day produced different keys: %s vs %s",
			cal.DayKey(morning), cal.DayKey(night))
	}
	if got := cal.DayKey(morning); got != "2025-06-10" {
		t.Errorf("DayKey = %q, want 2025-06-10", got)
	}
}

func TestDays(t *testing.T) {
	cal, _ := datemath.New("UTC")

	days, err := cal.Days("2025-06-28", "2025-07-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-06-28", "2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i, day := range want {
		if days[i] != day {
			t.Errorf("days[%d] = %q, want %q", i, days[i], day)
		}
	}

	inverted, err := cal.Days("2025-07-02", "2025-06-28")
	if err != nil {
		t.Fatalf("unexpected error for inverted range: %v", err)
	}
	if len(inverted) != 0 {
		t.Errorf("inverted range yielded %d days, want 0", len(inverted))
	}
}

func TestAddDays(t *testing.T) {
	cal, _ := datemath.New("UTC")

	got, err := cal.AddDays("2025-12-30", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-01-02" {
		t.Errorf("AddDays = %q, want 2026-01-02", got)
	}
}

func TestExtractDayKey(t *testing.T) {
	cal, _ := datemath.New("UTC")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"bare date", "2025-06-10", "2025-06-10"},
		{"rfc3339", "2025-06-10T14:30:00Z", "2025-06-10"},
		{"datetime", "2025-06-10 14:30:00", "2025-06-10"},
		{"short datetime", "2025-06-10 14:30", "2025-06-10"},
		{"empty", "", ""},
		{"garbage", "not-a-date", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.ExtractDayKey(tt.value); got != tt.want {
				t.Errorf("ExtractDayKey(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseStamp(t *testing.T) {
	cal, _ := datemath.New("UTC")

	tests := []struct {
		name   string
		value  string
		day    string
		minute int
		ok     bool
	}{
		{"datetime", "2025-06-10 14:00", "2025-06-10", 840, true},
		{"with seconds", "2025-06-10 14:00:30", "2025-06-10", 840, true},
		{"rfc3339", "2025-06-10T09:15:00Z", "2025-06-10", 555, true},
		{"bare date", "2025-06-10", "2025-06-10", 0, true},
		{"empty", "", "", 0, false},
		{"garbage", "soon", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, minute, ok := cal.ParseStamp(tt.value)
			if ok != tt.ok || day != tt.day || minute != tt.minute {
				t.Errorf("ParseStamp(%q) = (%q, %d, %v), want (%q, %d, %v)",
					tt.value, day, minute, ok, tt.day, tt.minute, tt.ok)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"14:00", 840, false},
		{"00:00", 0, false},
		{"23:45", datemath.LastSlotMinute, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"noon", 0, true},
	}
	for _, tt := range tests {
		got, err := datemath.ParseClock(tt.clock)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.clock)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tt.clock, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := datemath.FormatClock(881); got != "14:41" {
		t.Errorf("FormatClock(881) = %q, want 14:41", got)
	}
	if got := datemath.FormatClock(100000); got != "23:45" {
		t.Errorf("FormatClock overflow = %q, want clamp to 23:45", got)
	}
	if got := datemath.FormatClock(-5); got != "00:00" {
		t.Errorf("FormatClock(-5) = %q, want 00:00", got)
	}
}
