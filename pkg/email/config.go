package email

import "github.com/dmitrymomot/contactform/pkg/validator"

// Config holds email delivery configuration.
// Provider credentials are optional so development can run with DevSender;
// each sender constructor validates the fields it needs.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SESRegion           string `env:"AWS_SES_REGION" envDefault:"us-east-1"`
	SESAccessKey        string `env:"AWS_SES_ACCESS_KEY"`
	SESSecretKey        string `env:"AWS_SES_SECRET_KEY"`
	SESConfigurationSet string `env:"AWS_SES_CONFIGURATION_SET"`

	SenderEmail  string `env:"SENDER_EMAIL"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
}

func (c Config) validateIdentity() error {
	if c.SenderEmail == "" {
		return configError("SenderEmail is required")
	}
	if !validator.IsEmail(c.SenderEmail) {
		return configError("SenderEmail must be a valid email address")
	}
	if c.SupportEmail != "" && !validator.IsEmail(c.SupportEmail) {
		return configError("SupportEmail must be a valid email address")
	}
	return nil
}
