package validator

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

// space is the character class of sanitizer.IsSpace.
const space = `\t\n\x0B\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// Loose shape check: something@something.something, no whitespace, single @.
	emailRegex = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)

	// Either an international number (optional +, non-zero lead, up to 16 digits)
	// or a 10-digit local number with optional grouping.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{0,15}$|^\(?\d{3}\)?[` + space + `-]?\d{3}[` + space + `-]?\d{4}$`)
)

// MinPhoneLength is the minimum length of a phone number once separators are stripped.
const MinPhoneLength = 10

// ValidEmail validates that a string looks like an email address:
// non-space characters, a single '@', and a dot in the domain part.
// Empty values fail; pair with When for optional fields.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone validates a phone number. Whitespace, hyphens and parentheses
// are stripped first; the remainder must match one of the accepted shapes
// and be at least MinPhoneLength characters long.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsEmail reports whether value matches the email shape used by ValidEmail.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsPhone reports whether value passes the ValidPhone policy.
func IsPhone(value string) bool {
	clean := StripPhoneSeparators(value)
	return phoneRegex.MatchString(clean) && len(clean) >= MinPhoneLength
}

// StripPhoneSeparators removes whitespace (sanitizer.IsSpace), hyphens and parentheses.
func StripPhoneSeparators(value string) string {
	return strings.Map(func(r rune) rune {
		if sanitizer.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, value)
}
