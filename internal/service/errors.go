package service

import "errors"

// Error kinds. Handlers translate these to HTTP statuses with errors.Is;
// anything that does not match is reported as a generic server fault.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUpstream        = errors.New("upstream failure")
)

// Error pairs a machine-checkable kind with human-readable text.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

func notFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

func invalidArgument(message string) error {
	return &Error{kind: ErrInvalidArgument, message: message}
}

func unauthorized(message string) error {
	return &Error{kind: ErrUnauthorized, message: message}
}

func upstream(message string) error {
	return &Error{kind: ErrUpstream, message: message}
}
