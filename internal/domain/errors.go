package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("entity not found")
	ErrUnauthorized = errors.New("actor is not authorized")
	ErrConflict     = errors.New("conflicting state")
)

// ValidationError reports a malformed input attribute.
// The operation is aborted and nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotifyError wraps a notification transport failure.
// It is always non-fatal: callers downgrade it to a warning and
// never roll back a committed state transition because of it.
type NotifyError struct {
	err error
}

func NewNotifyError(err error) error {
	return &NotifyError{err: err}
}

func (e *NotifyError) Error() string {
	return "notification failed: " + e.err.Error()
}

func (e *NotifyError) Unwrap() error {
	return e.err
}
