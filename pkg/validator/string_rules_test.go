package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Run("passes for non-empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "test@example.com")
		assert.True(t, rule.Check())
		assert.Equal(t, "email", rule.Error.Field)
		assert.Equal(t, "field is required", rule.Error.Message)
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "email"}, rule.Error.TranslationValues)
	})

	t.Run("fails for empty string", func(t *testing.T) {
		rule := validator.RequiredString("email", "")
		assert.False(t, rule.Check())
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		rule := validator.RequiredString("email", " \t\n ")
		assert.False(t, rule.Check())
	})

	t.Run("passes for string with leading/trailing whitespace but content", func(t *testing.T) {
		rule := validator.RequiredString("name", "  John  ")
		assert.True(t, rule.Check())
	})
}

func TestMaxLenString(t *testing.T) {
	t.Run("passes at the limit", func(t *testing.T) {
		rule := validator.MaxLenString("message", "12345", 5)
		assert.True(t, rule.Check())
		assert.Equal(t, "must be at most 5 characters long", rule.Error.Message)
		assert.Equal(t, 5, rule.Error.TranslationValues["max"])
	})

	t.Run("fails above the limit", func(t *testing.T) {
		rule := validator.MaxLenString("message", "123456", 5)
		assert.False(t, rule.Check())
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		rule := validator.MaxLenString("name", "Zoë", 3)
		assert.True(t, rule.Check())
	})
}
