package usecase

import (
	"fmt"
	"sort"

	"later-reminder/internal/model"
	"later-reminder/pkg/datemath"
)

// resolveDueSlot finds a time on freeDay at least gapMinutes away from
// every reminder already due that day. Candidates step forward from
// the preferred minute in gap-sized increments; a fully packed day
// falls back to the last slot.
func (uc *implUseCase) resolveDueSlot(freeDay string, preferredMinute int, reminders []model.Reminder, gapMinutes int) string {
	taken := make([]int, 0, len(reminders))
	for _, item := range reminders {
		day, minute, ok := uc.cal.ParseStamp(item.DueDate)
		if !ok || day != freeDay {
			continue
		}
		taken = append(taken, minute)
	}
	sort.Ints(taken)

	for candidate := preferredMinute; candidate <= datemath.LastSlotMinute; candidate += gapMinutes {
		conflicted := false
		for _, minute := range taken {
			if abs(minute-candidate) < gapMinutes {
				conflicted = true
				break
			}
		}
		if !conflicted {
			return fmt.Sprintf("%s %s", freeDay, datemath.FormatClock(candidate))
		}
	}
	return fmt.Sprintf("%s %s", freeDay, datemath.FormatClock(datemath.LastSlotMinute))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
