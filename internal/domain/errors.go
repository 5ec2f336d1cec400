package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// FieldViolations unwraps to it, so errors.Is(err, ErrValidation)
	// matches both the sentinel and a collected violation list.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// FieldViolation describes a single failing input field.
type FieldViolation struct {
	Field   string
	Message string
}

// FieldViolations collects every failing field of a payload so that a
// single validation pass can report all problems at once rather than
// stopping at the first.
type FieldViolations []FieldViolation

// Add appends a violation for the given field.
func (v *FieldViolations) Add(field, message string) {
	*v = append(*v, FieldViolation{Field: field, Message: message})
}

// Error implements the error interface. The message names every failing
// field, e.g. "name: cannot be empty; email: invalid email format".
func (v FieldViolations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for violation lists.
func (v FieldViolations) Unwrap() error {
	return ErrValidation
}

// ErrOrNil returns the violations as an error, or nil if none were
// collected. Callers should always use this rather than returning the
// slice directly, since a typed nil slice is a non-nil error.
func (v FieldViolations) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
