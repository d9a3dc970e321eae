package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when deadlock matrices disagree on the
	// process or resource-type count.
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")

	// ErrOperationNotAllowed is returned when the active policy blocks an operation.
	ErrOperationNotAllowed = errors.New("operation not allowed")
)

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(in interface{}) error {
	return fmt.Errorf("invalid output %T", in)
}

// ValidationError reports a missing or out-of-range process field.
type ValidationError struct {
	Process string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Process == "" {
		return fmt.Sprintf("invalid %v: %v", e.Field, e.Reason)
	}
	return fmt.Sprintf("process %v: invalid %v: %v", e.Process, e.Field, e.Reason)
}

// NewValidationError creates a validation error
func NewValidationError(process, field, reason string) error {
	return &ValidationError{Process: process, Field: field, Reason: reason}
}

// EmptyInputError is returned when a run is requested without processes.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "no processes supplied"
}

// UnknownOperationError reports an unrecognised algorithm tag.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Operation)
}

// IncompleteRunError is returned when a run stops before every process completed.
type IncompleteRunError struct {
	Completed int
	Total     int
}

func (e *IncompleteRunError) Error() string {
	return fmt.Sprintf("incomplete run: %d of %d processes completed", e.Completed, e.Total)
}
