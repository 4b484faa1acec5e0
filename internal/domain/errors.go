package domain

import "errors"

// Error is a domain error with a stable code used to pick the
// user-facing message ("errors.<code>" translation key).
type Error struct {
	code string
	msg  string
}

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable code of the error.
func (e *Error) Code() string { return e.code }

// Domain errors.
var (
	ErrPractitionerNotFound = newError("practitioner_not_found", "practitioner not found")
	ErrDayOutOfRange        = newError("day_out_of_range", "day must be between 1 and 14")
	ErrDayLocked            = newError("day_locked", "day is locked")
	ErrDayAlreadyCompleted  = newError("day_already_completed", "day already completed")
	ErrUnsupportedLocale    = newError("unsupported_locale", "unsupported locale")
)

// Code extracts the domain error code from err, or "" when err does not
// wrap a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
