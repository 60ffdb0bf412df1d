package contact

import (
	"strings"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Messages reported to the visitor.
const (
	MsgNameRequired    = "Name is required."
	MsgEmailRequired   = "Email is required."
	MsgMessageRequired = "Message is required."
	MsgInvalidEmail    = "Please enter a valid email address."
	MsgInvalidPhone    = "Please enter a valid phone number."
)

// Result is the outcome of Validate. IsValid is true exactly when Errors is empty.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks every rule and collects all violations in rule order.
// Values are trimmed before checking.
func Validate(data FormData) Result {
	errs := check(data)
	return Result{
		IsValid: errs.IsEmpty(),
		Errors:  errs.Messages(),
	}
}

// FieldErrors maps each failing field to the message shown next to it.
// The entries match ValidateField for the same values.
func FieldErrors(data FormData) map[string]string {
	errs := check(data)
	out := make(map[string]string, len(errs))
	for _, field := range errs.Fields() {
		msgs := errs.Get(field)
		out[field] = msgs[len(msgs)-1]
	}
	return out
}

func check(data FormData) validator.ValidationErrors {
	data = data.Normalize()
	return validator.ExtractValidationErrors(validator.Apply(
		validator.RequiredString(FieldName, data.Name).WithMessage(MsgNameRequired),
		validator.RequiredString(FieldEmail, data.Email).WithMessage(MsgEmailRequired),
		validator.RequiredString(FieldMessage, data.Message).WithMessage(MsgMessageRequired),
		validator.ValidEmail(FieldEmail, data.Email).When(data.Email != "").WithMessage(MsgInvalidEmail),
		validator.ValidPhone(FieldPhone, data.Phone).When(data.Phone != "").WithMessage(MsgInvalidPhone),
	))
}

// ValidateField checks a single field the way the form does on blur and
// returns the message to show, or "" when the value is acceptable.
// Unknown fields always pass; use IsKnownField to reject them.
func ValidateField(field, value string) string {
	value = sanitizer.Trim(value)

	var msg string
	switch field {
	case FieldName, FieldEmail, FieldMessage:
		if value == "" {
			msg = requiredMessage(field)
		}
	}

	switch {
	case field == FieldEmail && value != "" && !validator.IsEmail(value):
		msg = MsgInvalidEmail
	case field == FieldPhone && value != "" && !validator.IsPhone(value):
		msg = MsgInvalidPhone
	}

	return msg
}

func requiredMessage(field string) string {
	return strings.ToUpper(field[:1]) + field[1:] + " is required."
}
