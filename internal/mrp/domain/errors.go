package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy surfaced to callers. Everything the HTTP layer renders is
// one of these four; storage faults are downgraded to the nearest member
// before they leave the service layer.
var (
	// ErrAuthFailure deliberately does not distinguish unknown user, wrong
	// password or inactive account.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrDuplicateUsername reports a uniqueness violation on user creation.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrNotFound reports that a referenced record no longer exists.
	ErrNotFound = errors.New("not found")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or missing input to a mutation.
// Recoverable: the caller re-prompts.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
