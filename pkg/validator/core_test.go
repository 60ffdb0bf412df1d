package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/validator"
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

	t.Run("keeps insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "name", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})
		assert.Equal(t, "validation failed: name: is required; email: is invalid", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "Email is required."})
	errs.Add(validator.ValidationError{Field: "phone", Message: "bad phone"})
	errs.Add(validator.ValidationError{Field: "email", Message: "Email is required."})

	assert.Equal(t, []string{"Email is required.", "Email is required."}, errs.Get("email"))
	assert.Equal(t, []string{"email", "phone"}, errs.Fields())
	assert.Nil(t, errs.Get("name"))
	assert.Equal(t, []string{"Email is required.", "bad phone", "Email is required."}, errs.Messages())
	assert.False(t, errs.IsEmpty())
}

func TestValidationErrors_MessagesEmpty(t *testing.T) {
	var errs validator.ValidationErrors
	msgs := errs.Messages()
	require.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", "Ann"),
			validator.ValidEmail("email", "ann@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in rule order", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("name", ""),
			validator.RequiredString("message", " "),
			validator.ValidEmail("email", "bad"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "message", "email"}, verrs.Fields())
	})
}

func TestRule_WithMessage(t *testing.T) {
	rule := validator.RequiredString("name", "").WithMessage("Name is required.")
	assert.False(t, rule.Check())
	assert.Equal(t, "Name is required.", rule.Error.Message)
	assert.Equal(t, "validation.required", rule.Error.TranslationKey)

	original := validator.RequiredString("name", "")
	_ = original.WithMessage("changed")
	assert.Equal(t, "field is required", original.Error.Message)
}

func TestRule_When(t *testing.T) {
	t.Run("skipped rule passes", func(t *testing.T) {
		rule := validator.ValidEmail("email", "").When(false)
		assert.True(t, rule.Check())
	})

	t.Run("active rule checks", func(t *testing.T) {
		rule := validator.ValidEmail("email", "nope").When(true)
		assert.False(t, rule.Check())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		err := validator.Apply(validator.RequiredString("name", ""))
		wrapped := fmt.Errorf("submit: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, "name", verrs[0].Field)
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
	})
}
