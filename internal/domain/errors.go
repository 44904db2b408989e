package domain

import "fmt"

// Validation error kinds.
const (
	ErrKindMissingField = "missing_field"
)

// ValidationError is the only error kind the generator propagates. It names
// the offending request field so callers can report it directly.
type ValidationError struct {
	Field string
	Kind  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required", e.Field)
}

// NewMissingField reports a blank required request field.
func NewMissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: ErrKindMissingField}
}
