package model

// Reminder is a reminder record from the reminder store. DueDate is
// the raw timestamp string reported by the store; it may be empty for
// undated reminders.
type Reminder struct {
	ID      string
	Title   string
	DueDate string
	List    string
}
