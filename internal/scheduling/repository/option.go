package repository

// ListEventsOptions holds the parameters for a calendar query.
type ListEventsOptions struct {
	CalendarID string // default "primary"
	FromDay    string // YYYY-MM-DD inclusive
	ToDay      string // YYYY-MM-DD inclusive
}

// ListRemindersOptions holds the parameters for listing reminders.
type ListRemindersOptions struct {
	List string // empty lists every reminder
}

// CreateReminderOptions holds the parameters for creating a reminder.
type CreateReminderOptions struct {
	Title       string
	DueDateTime string // "YYYY-MM-DD HH:MM"
	List        string // optional
	Notes       string // optional
}
