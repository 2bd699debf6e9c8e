package usecase

import (
	"testing"

	"later-reminder/internal/profile"
)

func TestDeriveGapMinutes(t *testing.T) {
	base := profile.Default() // avgGapMinutes 30

	tests := []struct {
		name         string
		profile      profile.Profile
		estimated    int
		fixedSpacing int
		want         int
	}{
		// round(30*0.7 + clamp(30, 15, 180)*0.3) = 30
		{name: "defaults with average task", profile: base, estimated: 60, want: 30},
		// suggested = clamp(45, 15, 180); round(21 + 13.5) = 35
		{name: "longer task widens gap", profile: base, estimated: 90, want: 35},
		// suggested floors at 15; round(21 + 4.5) = 26
		{name: "tiny task floors suggestion", profile: base, estimated: 20, want: 26},
		// suggested caps at 180 even for a day-long task
		{name: "huge task caps suggestion", profile: base, estimated: 480, want: 75},
		{name: "fixed override", profile: base, estimated: 90, fixedSpacing: 41, want: 41},
		{name: "fixed override clamped low", profile: base, estimated: 90, fixedSpacing: 5, want: 10},
		{name: "fixed override clamped high", profile: base, estimated: 90, fixedSpacing: 999, want: 240},
		{
			name: "learned gap dominates",
			profile: profile.Profile{
				Version: profile.Version,
				Stats:   profile.Stats{AvgGapMinutes: 120, AvgEstimatedMinutes: 60},
			},
			estimated: 60,
			// round(84 + 9) = 93
			want: 93,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveGapMinutes(tt.profile, tt.estimated, tt.fixedSpacing); got != tt.want {
				t.Errorf("deriveGapMinutes = %d, want %d", got, tt.want)
			}
		})
	}
}
