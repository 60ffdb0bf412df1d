package contact

import "github.com/dmitrymomot/contactform/pkg/sanitizer"

// Form field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldMessage}

// FormData is one contact form submission. Phone is optional.
type FormData struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

// NewFormData builds a FormData with surrounding whitespace trimmed.
func NewFormData(name, email, phone, message string) FormData {
	return FormData{Name: name, Email: email, Phone: phone, Message: message}.Normalize()
}

// Normalize returns a copy with every value trimmed.
func (d FormData) Normalize() FormData {
	return FormData{
		Name:    sanitizer.Trim(d.Name),
		Email:   sanitizer.Trim(d.Email),
		Phone:   sanitizer.Trim(d.Phone),
		Message: sanitizer.Trim(d.Message),
	}
}

// Value returns the value of the named field and whether the field exists.
func (d FormData) Value(field string) (string, bool) {
	switch field {
	case FieldName:
		return d.Name, true
	case FieldEmail:
		return d.Email, true
	case FieldPhone:
		return d.Phone, true
	case FieldMessage:
		return d.Message, true
	default:
		return "", false
	}
}

// IsKnownField reports whether field is one of Fields.
func IsKnownField(field string) bool {
	_, ok := FormData{}.Value(field)
	return ok
}

// Signals returns the form as Datastar signals.
func (d FormData) Signals() map[string]any {
	return map[string]any{
		FieldName:    d.Name,
		FieldEmail:   d.Email,
		FieldPhone:   d.Phone,
		FieldMessage: d.Message,
	}
}
