package scheduling

import "errors"

// Domain-specific errors for the scheduling package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrNoTitle        = errors.New("could not extract a task title")
	ErrInvalidRange   = errors.New("search range start must not be after its end")
	ErrInvalidSpacing = errors.New("fixed spacing must be a non-negative minute count")
	ErrNoFreeDay      = errors.New("no free day found in range")
	ErrListNotFound   = errors.New("reminder list not found")
	ErrNotAuthorized  = errors.New("reminder store is not authorized")
)
