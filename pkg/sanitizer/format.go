package sanitizer

import "strings"

// MaskEmail hides the local part except its first character so addresses
// can appear in logs without exposing the full value.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := parts[0]
	domain := parts[1]

	if len(local) == 0 {
		return email
	}

	if len(local) == 1 {
		return "*@" + domain
	}

	masked := string(local[0]) + strings.Repeat("*", len(local)-1)
	return masked + "@" + domain
}

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// MaskPhone follows PCI compliance pattern of showing last 4 digits for user recognition.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
