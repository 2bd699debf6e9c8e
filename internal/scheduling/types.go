package scheduling

// PlanInput carries one scheduling request. Zero-valued optional
// fields fall back to configured defaults.
type PlanInput struct {
	Input string // raw note, e.g. "あとで レポートを書く"
	Title string // explicit title; takes precedence over Input extraction

	CalendarID string // calendar to scan; default "primary"
	FromDay    string // YYYY-MM-DD search start; default today
	ToDay      string // YYYY-MM-DD search end inclusive; default FromDay+rangeDays
	List       string // reminder list name; empty means the default list

	DueTime             string // HH:MM preferred time; default from config
	FixedSpacingMinutes int    // >0 bypasses learned spacing

	// Classification rule overrides; empty slices keep configured
	// defaults.
	EventTypes      []string
	SummaryKeywords []string
	WorkKeywords    []string
	AllDayOnly      bool
}

// Plan is the computed scheduling outcome reported to the user.
type Plan struct {
	RunID            string   `json:"run_id"`
	Title            string   `json:"title"`
	FreeDay          string   `json:"free_day"`      // YYYY-MM-DD
	DueDateTime      string   `json:"due_date_time"` // "YYYY-MM-DD HH:MM"
	EstimatedMinutes int      `json:"estimated_minutes"`
	GapMinutes       int      `json:"gap_minutes"`
	List             string   `json:"list,omitempty"`
	Duplicate        bool     `json:"duplicate"`
	Committed        bool     `json:"committed"`
	Notes            string   `json:"notes,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}
