package usecase

import (
	"regexp"
	"strings"

	"later-reminder/internal/scheduling"
)

var (
	laterPrefix = regexp.MustCompile(`^(あとで|後で)\s*(.+)$`)
	verbSuffix  = regexp.MustCompile(`\s*(をやる|をする|する|やる|します|したい)$`)
)

// extractTitle resolves the task title. An explicit title wins; else
// the note text is stripped of its "later" prefix and trailing verb.
func extractTitle(explicit, input string) (string, error) {
	if t := strings.TrimSpace(explicit); t != "" {
		return t, nil
	}

	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", scheduling.ErrEmptyInput
	}

	body := raw
	if m := laterPrefix.FindStringSubmatch(raw); m != nil {
		body = m[2]
	}
	body = strings.TrimSpace(verbSuffix.ReplaceAllString(body, ""))

	if body == "" {
		return "", scheduling.ErrNoTitle
	}
	return body, nil
}
