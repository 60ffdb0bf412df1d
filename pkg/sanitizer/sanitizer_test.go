package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveNullBytes, sanitizer.Trim)
	assert.Equal(t, "hello", clean("  hel\x00lo \n"))
	assert.Equal(t, "HI", sanitizer.Apply(" hi ", sanitizer.Trim, strings.ToUpper))
	assert.Equal(t, "as is", sanitizer.Apply("as is"))
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	t.Run("trim", func(t *testing.T) {
		assert.Equal(t, "Ann", sanitizer.Trim("\t Ann \n"))
		assert.Equal(t, "Ann", sanitizer.Trim("\uFEFF\u00a0Ann\v\u3000"))
		assert.Equal(t, "\u0085", sanitizer.Trim("\u0085"))
	})

	t.Run("max length counts runes", func(t *testing.T) {
		assert.Equal(t, "Zoë", sanitizer.MaxLength("Zoë Smith", 3))
		assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
		assert.Equal(t, "abc", sanitizer.MaxLength("abc", 10))
	})

	t.Run("control chars", func(t *testing.T) {
		assert.Equal(t, "a\nb\tc", sanitizer.RemoveControlChars("a\x07\nb\tc\x1b"))
		assert.Equal(t, "a\vb\fc", sanitizer.RemoveControlChars("a\vb\fc\u0085"))
	})

	t.Run("single line", func(t *testing.T) {
		assert.Equal(t, "one two three", sanitizer.SingleLine(" one\r\ntwo\n\n three "))
	})

	t.Run("header injection", func(t *testing.T) {
		assert.Equal(t, "SubjectBcc: x@y.z", sanitizer.PreventHeaderInjection("Subject\r\nBcc: x@y.z\x00"))
	})
}

func TestMasking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"ann@example.com", "a**@example.com"},
		{"a@example.com", "*@example.com"},
		{"not-an-email", "not-an-email"},
		{"@example.com", "@example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.MaskEmail(tt.in), tt.in)
	}

	assert.Equal(t, "******4567", sanitizer.MaskPhone("(555) 123-4567"))
	assert.Equal(t, "**", sanitizer.MaskPhone("12"))
	assert.Equal(t, "5551234567", sanitizer.NormalizePhone("555-123-4567"))
}

func TestIsSpace(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680', '\u2000', '\u200a', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\uFEFF'} {
		assert.True(t, sanitizer.IsSpace(r), "%U", r)
	}
	for _, r := range []rune{'\u0085', '\u200b', '\u180e', 'a', '-', 0} {
		assert.False(t, sanitizer.IsSpace(r), "%U", r)
	}
}
