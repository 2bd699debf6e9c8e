package usecase

import (
	"math"

	"later-reminder/internal/profile"
	"later-reminder/pkg/datemath"
)

// deriveGapMinutes computes the spacing between the new reminder and
// its neighbors. A positive fixed override bypasses learning entirely;
// otherwise the learned average gap is blended 70/30 with half the
// duration estimate.
func deriveGapMinutes(p profile.Profile, estimatedMinutes, fixedSpacing int) int {
	if fixedSpacing > 0 {
		return datemath.ClampInt(fixedSpacing, profile.GapMinMinutes, profile.GapMaxMinutes)
	}

	learned := float64(p.Stats.AvgGapMinutes)
	suggested := float64(datemath.ClampInt(int(math.Round(float64(estimatedMinutes)*0.5)), 15, 180))
	return datemath.ClampInt(int(math.Round(learned*0.7+suggested*0.3)), 15, 180)
}
