package schemakit

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// ValidationError maps field names to their validation messages.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// Error implements the error interface.
// Fields are listed in sorted order with their first message.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range e.Fields() {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation error: %s", strings.Join(parts, ", "))
}

// NewValidationError creates a new validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromErrors groups validator errors by field. Messages keep report order.
func FromErrors(errs validator.ValidationErrors) ValidationError {
	e := NewValidationError()
	for _, err := range errs {
		e.Add(err.Field, err.Message)
	}
	return e
}

// FromResult returns nil for a valid result and the grouped errors otherwise.
func FromResult(res validator.Result) error {
	if res.Valid() {
		return nil
	}
	return FromErrors(res.Errors)
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

// Fields returns the failing field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// IsEmpty returns true if there are no validation errors.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
