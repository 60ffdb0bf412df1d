package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/email/templates"
	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

const (
	notificationSubject = "New contact form message from %s"
	notificationTag     = "contact-form"
	maxSubjectName      = 200
)

// EmailSubmitter delivers submissions as an email to a fixed recipient.
// Replies go straight to the visitor.
type EmailSubmitter struct {
	sender    email.EmailSender
	recipient string
}

// NewEmailSubmitter returns a submitter that mails each submission to recipient.
func NewEmailSubmitter(sender email.EmailSender, recipient string) *EmailSubmitter {
	return &EmailSubmitter{sender: sender, recipient: recipient}
}

func (s *EmailSubmitter) Submit(ctx context.Context, data FormData) (Receipt, error) {
	receipt := newReceipt(time.Now())

	html, err := templates.Render(ctx, NotificationEmail(data, receipt))
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: render notification: %w", ErrDeliveryFailed, err)
	}

	err = s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.recipient,
		ReplyTo:  data.Email,
		Subject:  fmt.Sprintf(notificationSubject, subjectName(data.Name)),
		BodyHTML: html,
		BodyText: notificationText(data, receipt),
		Tag:      notificationTag,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return receipt, nil
}

func subjectName(name string) string {
	return sanitizer.Apply(name,
		sanitizer.PreventHeaderInjection,
		sanitizer.SingleLine,
		func(s string) string { return sanitizer.MaxLength(s, maxSubjectName) },
	)
}

func notificationText(data FormData, receipt Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", data.Name)
	fmt.Fprintf(&b, "Email: %s\n", data.Email)
	if data.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", data.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n\n", data.Message)
	fmt.Fprintf(&b, "Reference: %s (%s)\n", receipt.ID, receipt.SubmittedAt.Format(time.RFC3339))
	return b.String()
}
