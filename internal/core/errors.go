package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", ErrInvalidInput)
	ErrEmptyContent     = fmt.Errorf("%w: content is required", ErrInvalidInput)
	ErrNoChanges        = fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	ErrSearchTooShort   = fmt.Errorf("%w: search term must be at least %d characters", ErrInvalidInput, MinSearchLength)
	ErrInvalidCursor    = fmt.Errorf("%w: malformed cursor", ErrInvalidInput)
	ErrCommentsDisabled = fmt.Errorf("%w: comments are disabled for this post", ErrForbidden)
)

// Outcome classifies err into one of the outcome kinds callers deal with. Used as a metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// IsBusiness reports whether err is an expected business outcome rather than an infrastructure failure.
func IsBusiness(err error) bool {
	switch Outcome(err) {
	case "not_found", "conflict", "forbidden", "invalid_input":
		return true
	}
	return false
}
