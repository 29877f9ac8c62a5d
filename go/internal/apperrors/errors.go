// Package apperrors defines the typed errors surfaced by the command layer.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a command failure.
type Kind string

const (
	// KindInvalidInput marks a malformed or missing required parameter.
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindNotFound marks a referenced entity that does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidState marks an operation that is illegal given current entity state.
	KindInvalidState Kind = "INVALID_STATE"
	// KindNoOp marks a conditional mutation that affected zero rows after its
	// precondition check passed (race or already-applied).
	KindNoOp Kind = "NO_OP"
	// KindDatabaseError marks an underlying store failure.
	KindDatabaseError Kind = "DATABASE_ERROR"
)

// Error is a command-level failure with a machine-readable kind.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an Error without an underlying cause.
func E(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around an underlying cause.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindDatabaseError for errors that did not
// originate in the command layer (store/connectivity failures).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindDatabaseError
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
