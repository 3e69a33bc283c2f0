package myerrors

import "errors"

// Error categories surfaced to callers. Specific causes wrap one of these,
// handlers match with errors.Is to pick the status code.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateRequest  = errors.New("duplicate request")

	// ErrOrderNumberTaken signals a lost race on the daily order counter,
	// callers retry with a fresh number.
	ErrOrderNumberTaken = errors.New("order number already taken")
)
