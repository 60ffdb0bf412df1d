package sanitizer

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is whitespace as browsers define it for
// String.prototype.trim and the regexp \s class. Unlike unicode.IsSpace it
// includes U+FEFF and excludes U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Trim removes leading and trailing IsSpace runes.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// MaxLength truncates a string to the specified maximum length in runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveControlChars removes control characters, keeping IsSpace runes
// such as tab, newline and vertical tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SingleLine converts a multi-line string to a single line by replacing
// line breaks with spaces and normalizing whitespace.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// PreventHeaderInjection removes characters that could split a mail or HTTP header.
func PreventHeaderInjection(s string) string {
	result := strings.ReplaceAll(s, "\r", "")
	result = strings.ReplaceAll(result, "\n", "")
	return RemoveNullBytes(result)
}
