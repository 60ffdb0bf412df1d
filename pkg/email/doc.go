// Package email sends transactional emails through a provider-agnostic
// EmailSender.
//
// Implementations:
//   - NewPostmarkClient delivers through Postmark with open and HTML link tracking.
//   - NewSESClient delivers through Amazon SES v2 using static keys or the
//     default AWS credential chain.
//   - NewDevSender writes each message to disk as .html and .json files.
//
// Every implementation validates SendEmailParams first and wraps provider
// failures with ErrFailedToSendEmail; bad parameters wrap ErrInvalidParams and
// bad configuration wraps ErrInvalidConfig.
//
//	sender, err := email.NewSESClient(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	body, err := templates.Render(ctx, view)
//	if err != nil {
//		return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "owner@example.com",
//		ReplyTo:  visitorEmail,
//		Subject:  "New contact form message",
//		BodyHTML: body,
//	})
//
// SendEmailParams.ReplyTo overrides Config.SupportEmail so replies go to the
// person who filled in the form.
package email
