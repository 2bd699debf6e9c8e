package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"later-reminder/internal/profile"
	"later-reminder/pkg/datemath"
)

var (
	hourPattern   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(時間|h|hr|hrs|hour|hours)`)
	minutePattern = regexp.MustCompile(`(?i)(\d+)\s*(分|m|min|mins|minute|minutes)`)

	// Vocabulary hints when the text carries no explicit duration.
	quickWords = []string{"確認", "返信", "連絡", "メール", "チェック", "買う", "購入"}
	longWords  = []string{"設計", "実装", "資料", "まとめ", "作成", "レポート", "提出", "調査", "レビュー"}
)

// estimateMinutes guesses the task duration from its text. Explicit
// hour or minute mentions win; otherwise quick-task vocabulary maps to
// 30, substantial-task vocabulary to 90, and anything else to 60. The
// result always lands in [15, 480].
func estimateMinutes(text string) int {
	if m := hourPattern.FindStringSubmatch(text); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil && hours > 0 {
			return datemath.ClampInt(int(math.Round(hours*60)), profile.EstimateMinMinutes, profile.EstimateMaxMinutes)
		}
	}
	if m := minutePattern.FindStringSubmatch(text); m != nil {
		mins, err := strconv.Atoi(m[1])
		if err == nil && mins > 0 {
			return datemath.ClampInt(mins, profile.EstimateMinMinutes, profile.EstimateMaxMinutes)
		}
	}

	lower := strings.ToLower(text)
	for _, w := range quickWords {
		if strings.Contains(lower, w) {
			return 30
		}
	}
	for _, w := range longWords {
		if strings.Contains(lower, w) {
			return 90
		}
	}
	return 60
}
