package email

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

// MaxSubjectLength keeps the subject header within the RFC 5322 line limit.
const MaxSubjectLength = 998

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Overrides the configured support address
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks that the message can be handed to a provider.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.RequiredString("send_to", p.SendTo),
		validator.ValidEmail("send_to", p.SendTo).When(p.SendTo != ""),
		validator.ValidEmail("reply_to", p.ReplyTo).When(p.ReplyTo != ""),
		validator.RequiredString("subject", p.Subject),
		validator.MaxLenString("subject", p.Subject, MaxSubjectLength),
		validator.RequiredString("body_html", p.BodyHTML),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

func (p SendEmailParams) replyTo(cfg Config) string {
	if p.ReplyTo != "" {
		return p.ReplyTo
	}
	return cfg.SupportEmail
}
