package conversation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when construction inputs cannot be rendered
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes which input was rejected and why
type InvalidArgumentError struct {
	Field  string
	Reason string
}

// NewInvalidArgumentError creates an error for the given field
func NewInvalidArgumentError(field, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Field: field, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument)
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
