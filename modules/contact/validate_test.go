package contact_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/modules/contact"
)

func validForm() contact.FormData {
	return contact.NewFormData("Ann", "ann@example.com", "", "Hi")
}

func TestNewFormDataTrims(t *testing.T) {
	t.Parallel()

	got := contact.NewFormData("  Ann ", "\tann@example.com\n", " 555-123-4567 ", "  Hi there  ")
	assert.Equal(t, contact.FormData{
		Name:    "Ann",
		Email:   "ann@example.com",
		Phone:   "555-123-4567",
		Message: "Hi there",
	}, got)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data contact.FormData
		want contact.Result
	}{
		{
			name: "valid without phone",
			data: contact.FormData{Name: "Ann", Email: "ann@example.com", Phone: "", Message: "Hi"},
			want: contact.Result{IsValid: true, Errors: []string{}},
		},
		{
			name: "every rule fails in order",
			data: contact.FormData{Name: "", Email: "bad", Phone: "12", Message: ""},
			want: contact.Result{IsValid: false, Errors: []string{
				"Name is required.",
				"Message is required.",
				"Please enter a valid email address.",
				"Please enter a valid phone number.",
			}},
		},
		{
			name: "whitespace only counts as empty",
			data: contact.FormData{Name: "   ", Email: " \t", Message: "\n"},
			want: contact.Result{IsValid: false, Errors: []string{
				"Name is required.",
				"Email is required.",
				"Message is required.",
			}},
		},
		{
			name: "empty email is not also a format error",
			data: contact.FormData{Name: "Ann", Message: "Hi"},
			want: contact.Result{IsValid: false, Errors: []string{"Email is required."}},
		},
		{
			name: "invalid email",
			data: contact.FormData{Name: "Ann", Email: "not-an-email", Message: "Hi"},
			want: contact.Result{IsValid: false, Errors: []string{"Please enter a valid email address."}},
		},
		{
			name: "shortest accepted email",
			data: contact.FormData{Name: "Ann", Email: "a@b.c", Message: "Hi"},
			want: contact.Result{IsValid: true, Errors: []string{}},
		},
		{
			name: "grouped local phone",
			data: contact.FormData{Name: "Ann", Email: "a@b.c", Phone: "555-123-4567", Message: "Hi"},
			want: contact.Result{IsValid: true, Errors: []string{}},
		},
		{
			name: "short phone",
			data: contact.FormData{Name: "Ann", Email: "a@b.c", Phone: "123", Message: "Hi"},
			want: contact.Result{IsValid: false, Errors: []string{"Please enter a valid phone number."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := contact.Validate(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.IsValid, len(got.Errors) == 0)
		})
	}
}

func TestValidateBrowserWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data contact.FormData
		want []string
	}{
		{
			name: "vertical tab breaks an email",
			data: contact.FormData{Name: "Ann", Email: "a\vb@c.d", Message: "x"},
			want: []string{"Please enter a valid email address."},
		},
		{
			name: "next line is not whitespace",
			data: contact.FormData{Name: "\u0085", Email: "ann@example.com", Message: "x"},
			want: []string{},
		},
		{
			name: "next line is not a phone separator",
			data: contact.FormData{Name: "Ann", Email: "ann@example.com", Phone: "555\u0085123\u00854567", Message: "x"},
			want: []string{"Please enter a valid phone number."},
		},
		{
			name: "byte order mark is a phone separator",
			data: contact.FormData{Name: "Ann", Email: "ann@example.com", Phone: "555\uFEFF123\uFEFF4567", Message: "x"},
			want: []string{},
		},
		{
			name: "byte order mark is trimmed",
			data: contact.FormData{Name: "\uFEFF", Email: "\uFEFFa@b.c", Message: "x"},
			want: []string{"Name is required."},
		},
		{
			name: "no-break space is trimmed",
			data: contact.FormData{Name: "\u00a0Ann\u00a0", Email: "ann@example.com\u3000", Message: "\u2028"},
			want: []string{"Message is required."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := contact.Validate(tt.data)
			assert.Equal(t, tt.want, got.Errors)
			assert.Equal(t, len(tt.want) == 0, got.IsValid)
		})
	}
}

func TestFieldErrorsMatchValidateField(t *testing.T) {
	t.Parallel()

	forms := []contact.FormData{
		validForm(),
		{},
		{Name: " ", Email: "bad", Phone: "12", Message: ""},
		{Name: "Ann", Email: "\uFEFFann@example.com", Phone: "555\uFEFF123\uFEFF4567", Message: "Hi"},
		{Name: "Ann", Email: "a\vb@c.d", Phone: "(555) 123-4567", Message: "Hi"},
	}

	for _, data := range forms {
		errs := contact.FieldErrors(data)
		for _, field := range contact.Fields {
			value, _ := data.Value(field)
			assert.Equal(t, contact.ValidateField(field, value), errs[field], "%s in %+v", field, data)
		}
	}
	assert.Empty(t, contact.FieldErrors(validForm()))
}

func TestValidateRequiredFields(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*contact.FormData){
		"Name is required.":    func(d *contact.FormData) { d.Name = "" },
		"Email is required.":   func(d *contact.FormData) { d.Email = "  " },
		"Message is required.": func(d *contact.FormData) { d.Message = "\t" },
	}
	for msg, blank := range cases {
		t.Run(msg, func(t *testing.T) {
			t.Parallel()
			data := validForm()
			blank(&data)

			got := contact.Validate(data)
			assert.False(t, got.IsValid)
			assert.Contains(t, got.Errors, msg)
		})
	}
}

func TestValidatePhonePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone string
		valid bool
	}{
		{"", true},
		{"555-123-4567", true},
		{"(555) 123-4567", true},
		{"555 123 4567", true},
		{"+15551234567", true},
		{"+123456789", true},
		{"15551234567", true},
		{"123", false},
		{"12", false},
		{"123456789", false},
		{"0123456789", true},
		{"555.123.4567", false},
		{"phone", false},
		{"+12345678901234567", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			t.Parallel()
			data := validForm()
			data.Phone = tt.phone

			got := contact.Validate(data)
			assert.Equal(t, tt.valid, got.IsValid, "errors: %v", got.Errors)
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	t.Parallel()

	data := contact.FormData{Name: "", Email: "bad", Phone: "12", Message: ""}
	first := contact.Validate(data)
	second := contact.Validate(data)
	assert.Equal(t, first, second)
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(contact.Validate(validForm()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_valid":true,"errors":[]}`, string(raw))
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field, value, want string
	}{
		{contact.FieldName, "", "Name is required."},
		{contact.FieldName, " Ann ", ""},
		{contact.FieldEmail, "", "Email is required."},
		{contact.FieldEmail, "nope", "Please enter a valid email address."},
		{contact.FieldEmail, "ann@example.com", ""},
		{contact.FieldMessage, "   ", "Message is required."},
		{contact.FieldPhone, "", ""},
		{contact.FieldPhone, "12", "Please enter a valid phone number."},
		{contact.FieldPhone, "(555) 123-4567", ""},
		{"company", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, contact.ValidateField(tt.field, tt.value))
		})
	}
}

func TestIsKnownField(t *testing.T) {
	t.Parallel()

	for _, f := range contact.Fields {
		assert.True(t, contact.IsKnownField(f), f)
	}
	assert.False(t, contact.IsKnownField("company"))
	assert.False(t, contact.IsKnownField(""))
}
