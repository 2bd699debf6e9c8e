package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "internal server error"

	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the wire formats for scheduled
	// days and due timestamps.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"
)
