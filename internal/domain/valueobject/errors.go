package valueobject

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports which value was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

// Error formats as "field: reason".
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
