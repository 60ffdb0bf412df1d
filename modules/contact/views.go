package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/contactform/handler"
)

// DOM ids and selectors patched by the handlers.
const (
	FormID          = "contact-form"
	ErrorListID     = "form-errors"
	SubmitButtonID  = "submit-button"
	SuccessNoticeID = "success-message"
	ToastTarget     = "#toast-container"

	submitLabel  = "Send Message"
	sendingLabel = "Sending..."

	datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"
)

// Selector returns the CSS id selector for id.
func Selector(id string) string {
	return "#" + id
}

// FieldErrorID returns the id of the inline error element for field.
func FieldErrorID(field string) string {
	return field + "-error"
}

// FormParams is the state rendered into the form.
type FormParams struct {
	Data        FormData
	Errors      []string
	FieldErrors map[string]string
	// Sent shows the success notice above the form.
	Sent bool
}

type fieldSpec struct {
	name      string
	label     string
	inputType string
	required  bool
	multiline bool
}

var formFields = []fieldSpec{
	{name: FieldName, label: "Name", inputType: "text", required: true},
	{name: FieldEmail, label: "Email", inputType: "email", required: true},
	{name: FieldPhone, label: "Phone (optional)", inputType: "tel"},
	{name: FieldMessage, label: "Message", required: true, multiline: true},
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}

// Page renders the standalone contact page.
func Page(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>Contact</title>`,
			`<script type="module" src="`, datastarScript, `"></script>`,
			`</head><body><div id="toast-container"></div><section id="contact"><h2>Get in Touch</h2>`,
		); err != nil {
			return err
		}
		if p.Sent {
			if err := SuccessNotice().Render(ctx, w); err != nil {
				return err
			}
		}
		if err := Form(p).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</section></body></html>`)
	})
}

// Form renders the contact form bound to Datastar signals.
func Form(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(p.Data.Signals())
		if err != nil {
			return err
		}
		if err := write(w,
			`<form id="`, FormID, `" novalidate data-signals="`, esc(string(signals)), `"`,
			` data-on-submit__prevent="@post('/contact')">`,
		); err != nil {
			return err
		}
		if err := ErrorList(p.Errors).Render(ctx, w); err != nil {
			return err
		}
		for _, f := range formFields {
			if err := renderField(ctx, w, f, p); err != nil {
				return err
			}
		}
		if err := SubmitButton(false).Render(ctx, w); err != nil {
			return err
		}
		return write(w, `</form>`)
	})
}

func renderField(ctx context.Context, w io.Writer, f fieldSpec, p FormParams) error {
	value, _ := p.Data.Value(f.name)
	attrs := fmt.Sprintf(`id="%s" name="%s" data-bind-%s data-on-blur="@post('/contact/validate/%s')"`,
		f.name, f.name, f.name, f.name)
	if f.required {
		attrs += " required"
	}

	if err := write(w, `<div class="form-group"><label for="`, f.name, `">`, esc(f.label), `</label>`); err != nil {
		return err
	}

	var err error
	if f.multiline {
		err = write(w, `<textarea `, attrs, ` rows="5">`, esc(value), `</textarea>`)
	} else {
		err = write(w, `<input type="`, f.inputType, `" `, attrs, ` value="`, esc(value), `">`)
	}
	if err != nil {
		return err
	}

	if err := FieldError(f.name, p.FieldErrors[f.name]).Render(ctx, w); err != nil {
		return err
	}
	return write(w, `</div>`)
}

// ErrorList renders the form-level error summary. An empty list renders
// an empty placeholder so it can be patched later.
func ErrorList(messages []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(messages) == 0 {
			return write(w, `<div id="`, ErrorListID, `"></div>`)
		}
		var b strings.Builder
		b.WriteString(`<div id="` + ErrorListID + `"><div class="error-message" role="alert">`)
		b.WriteString(`<strong>Please correct the following errors:</strong><ul>`)
		for _, m := range messages {
			b.WriteString(`<li>` + esc(m) + `</li>`)
		}
		b.WriteString(`</ul></div></div>`)
		return write(w, b.String())
	})
}

// FieldError renders the inline error for one field; empty when message is "".
func FieldError(field, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, `<span id="`, esc(FieldErrorID(field)), `" class="field-error">`, esc(message), `</span>`)
	})
}

// SubmitButton renders the submit control, disabled while sending.
func SubmitButton(sending bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if sending {
			return write(w, `<button id="`, SubmitButtonID, `" type="submit" class="submit-button" disabled>`, sendingLabel, `</button>`)
		}
		return write(w, `<button id="`, SubmitButtonID, `" type="submit" class="submit-button">`, submitLabel, `</button>`)
	})
}

// SuccessNotice renders the confirmation shown above the form.
func SuccessNotice() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div id="`, SuccessNoticeID, `" class="success-message" role="status">`,
			`<strong>Thank you!</strong> Your message has been sent successfully. `,
			`I&#39;ll get back to you within 24-48 hours.</div>`,
		)
	})
}

// ErrorPage renders a full error page.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Error</title></head><body>`,
			`<main class="error-page"><h1>`, fmt.Sprint(p.StatusCode), `</h1><p>`, esc(p.Error), `</p>`,
			`<p class="request-id">Request ID: `, esc(p.RequestID), `</p>`,
			`<a href="`, esc(p.RetryURL), `">Try again</a></main></body></html>`,
		)
	})
}

// ErrorToast renders a dismissible notification patched into the toast container.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w,
			`<div class="toast toast-`, esc(p.Type), `" role="alert" data-request-id="`, esc(p.RequestID), `">`,
			esc(p.Message), `</div>`,
		)
	})
}

// NotificationEmail renders the email body sent for a submission.
func NotificationEmail(data FormData, receipt Receipt) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		phone := data.Phone
		if phone == "" {
			phone = "not provided"
		}
		return write(w,
			`<html><body><h2>New contact form message</h2><table>`,
			`<tr><th align="left">Name</th><td>`, esc(data.Name), `</td></tr>`,
			`<tr><th align="left">Email</th><td>`, esc(data.Email), `</td></tr>`,
			`<tr><th align="left">Phone</th><td>`, esc(phone), `</td></tr>`,
			`</table><p style="white-space: pre-wrap">`, esc(data.Message), `</p>`,
			`<p><small>Reference `, esc(receipt.ID), ` at `, receipt.SubmittedAt.Format(time.RFC1123), `</small></p>`,
			`</body></html>`,
		)
	})
}
