package iir

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams is matched by every *ValidationError.
	ErrInvalidParams = errors.New("iir: invalid filter parameters")
	// ErrUnstable is returned for a cascade with poles outside the unit circle
	// or when filtering produced non-finite output.
	ErrUnstable = errors.New("iir: filter output is unstable")
)

// ValidationError describes a rejected filter parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("iir: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParams }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
