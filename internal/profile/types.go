package profile

import (
	"math"
	"time"

	"later-reminder/pkg/datemath"
)

const (
	// Version is the current profile schema version.
	Version = 1

	// Estimate and gap bounds. Every persisted average stays inside
	// these ranges.
	EstimateMinMinutes = 15
	EstimateMaxMinutes = 480
	GapMinMinutes      = 10
	GapMaxMinutes      = 240

	// smoothing is the EMA learning rate toward the newest sample.
	smoothing = 0.2
)

// Stats is the learned scheduling statistics, evolved by exponential
// smoothing after each committed run.
type Stats struct {
	Runs                int    `json:"runs"`
	AvgEstimatedMinutes int    `json:"avgEstimatedMinutes"`
	AvgGapMinutes       int    `json:"avgGapMinutes"`
	LastUsedAt          string `json:"lastUsedAt,omitempty"`
	LastDueDateTime     string `json:"lastDueDateTime,omitempty"`
}

// Profile is the persisted learning record.
type Profile struct {
	Version int   `json:"version"`
	Stats   Stats `json:"stats"`
}

// Default returns a fresh profile for first use.
func Default() Profile {
	return Profile{
		Version: Version,
		Stats: Stats{
			Runs:                0,
			AvgEstimatedMinutes: 60,
			AvgGapMinutes:       30,
		},
	}
}

// Apply folds one committed run into the profile: runs increments and
// both averages move 20% toward the new samples, clamped to their
// bounds.
func (p Profile) Apply(estimatedMinutes, gapMinutes int, dueDateTime string, now time.Time) Profile {
	next := p
	next.Version = Version
	next.Stats.Runs = p.Stats.Runs + 1
	next.Stats.AvgEstimatedMinutes = datemath.ClampInt(
		smooth(p.Stats.AvgEstimatedMinutes, estimatedMinutes),
		EstimateMinMinutes, EstimateMaxMinutes,
	)
	next.Stats.AvgGapMinutes = datemath.ClampInt(
		smooth(p.Stats.AvgGapMinutes, gapMinutes),
		GapMinMinutes, GapMaxMinutes,
	)
	next.Stats.LastUsedAt = now.Format(time.RFC3339)
	next.Stats.LastDueDateTime = dueDateTime
	return next
}

func smooth(prev, sample int) int {
	return int(math.Round(float64(prev)*(1-smoothing) + float64(sample)*smoothing))
}
