package remindctl

// Reminder is a single reminder as reported by remindctl.
type Reminder struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"dueDate"` // timestamp string, may be empty
	List    string `json:"list"`
}

// List is a named reminder list.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Status is the authorization state of the reminders backend.
type Status struct {
	Authorized bool `json:"authorized"`
}

// AddRequest is the input for creating a reminder.
type AddRequest struct {
	Title string
	Due   string // "YYYY-MM-DD HH:MM"
	List  string // optional list name
	Notes string // optional notes body
}
