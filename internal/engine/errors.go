package engine

import (
	"errors"
	"fmt"
)

// InvalidOptionError indicates the submitted answer is not one of the
// four valid option labels.
type InvalidOptionError struct {
	Option string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: must be one of A, B, C, D", e.Option)
}

// SessionCompletedError indicates an operation was attempted against a
// session that has already been finalized.
type SessionCompletedError struct {
	Ref string
}

func (e *SessionCompletedError) Error() string {
	return fmt.Sprintf("session %s is already completed", e.Ref)
}

// NotFoundError indicates an unknown session, question or user reference.
type NotFoundError struct {
	Kind string // "session", "question" or "user"
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Ref)
}

// IsInvalidOption reports whether err is an InvalidOptionError.
func IsInvalidOption(err error) bool {
	var e *InvalidOptionError
	return errors.As(err, &e)
}

// IsSessionCompleted reports whether err is a SessionCompletedError.
func IsSessionCompleted(err error) bool {
	var e *SessionCompletedError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
