package handler

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

// ValidationError represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// NewValidationError creates a new validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// ValidationErrorFrom converts validator errors, keeping message order per field.
func ValidationErrorFrom(errs validator.ValidationErrors) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		ve.Add(e.Field, e.Message)
	}
	return ve
}

// Error returns a summary with the first message of each field.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "Validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
