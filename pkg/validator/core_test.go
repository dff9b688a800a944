package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("omits field for root violations", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Message: "value is required."})
		assert.Equal(t, "validation failed: value is required.", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "password", Message: "missing digit"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
		assert.Nil(t, errs.Get("name"))
	})

	t.Run("get errors", func(t *testing.T) {
		got := errs.GetErrors("email")
		require.Len(t, got, 1)
		assert.Equal(t, "is required", got[0].Message)
	})

	t.Run("fields keep first occurrence order", func(t *testing.T) {
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("messages", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "missing digit", "is required"}, errs.Messages())
	})

	t.Run("is empty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestValidationErrors_Unique(t *testing.T) {
	t.Run("collapses identical messages keeping the first", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "a", Message: "x is invalid."},
			{Field: "b", Message: "y is invalid."},
			{Field: "c", Message: "x is invalid."},
		}

		unique := errs.Unique()
		require.Len(t, unique, 2)
		assert.Equal(t, "a", unique[0].Field)
		assert.Equal(t, "b", unique[1].Field)
		assert.Len(t, errs, 3)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		assert.Nil(t, validator.ValidationErrors{}.Unique())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "is required"}}
		wrapped := fmt.Errorf("create user: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.Equal(t, errs, extracted)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
