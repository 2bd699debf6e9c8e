package usecase

import (
	"fmt"
	"strings"

	"later-reminder/internal/model"
)

// taskSignature identifies a task by normalized title and due day.
// Two reminders with the same signature are the same task.
func (uc *implUseCase) taskSignature(title, due string) string {
	return fmt.Sprintf("%s__%s", strings.ToLower(strings.TrimSpace(title)), uc.cal.ExtractDayKey(due))
}

// hasDuplicate reports whether any existing reminder already carries
// the task's signature for the chosen day.
func (uc *implUseCase) hasDuplicate(reminders []model.Reminder, title, freeDay string) bool {
	signature := uc.taskSignature(title, freeDay)
	for _, item := range reminders {
		if uc.taskSignature(item.Title, item.DueDate) == signature {
			return true
		}
	}
	return false
}
