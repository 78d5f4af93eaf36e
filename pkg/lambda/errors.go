package lambda

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ParseError is returned when a string is not a base-10 integer literal.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ActionError wraps a value recovered from a panicking action. It never
// leaves the goroutine that ran the action.
type ActionError struct {
	HandleID uuid.UUID
	Value    any
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s panicked: %v", e.HandleID, e.Value)
}

func (e *ActionError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// IsActionError reports whether err is or wraps an *ActionError.
func IsActionError(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae)
}
