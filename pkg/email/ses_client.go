package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charsetUTF8 = "UTF-8"

// SESAPI is the subset of the SES v2 client used by the sender.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesClient struct {
	api    SESAPI
	config Config
}

// NewSESClient creates an Amazon SES v2 email sender.
// Static credentials are used when both keys are set; otherwise the default
// AWS credential chain applies (environment, shared config, instance role).
func NewSESClient(ctx context.Context, cfg Config) (EmailSender, error) {
	if cfg.SESRegion == "" {
		return nil, configError("SESRegion is required")
	}
	if (cfg.SESAccessKey == "") != (cfg.SESSecretKey == "") {
		return nil, configError("SESAccessKey and SESSecretKey must be set together")
	}
	if err := cfg.validateIdentity(); err != nil {
		return nil, err
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.SESRegion)}
	if cfg.SESAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKey, cfg.SESSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %w", ErrInvalidConfig, err)
	}

	return &sesClient{api: sesv2.NewFromConfig(awsCfg), config: cfg}, nil
}

// NewSESClientWithAPI wraps an existing SES v2 client.
func NewSESClientWithAPI(api SESAPI, cfg Config) (EmailSender, error) {
	if api == nil {
		return nil, configError("SES API client is required")
	}
	if err := cfg.validateIdentity(); err != nil {
		return nil, err
	}
	return &sesClient{api: api, config: cfg}, nil
}

// SendEmail implements EmailSender using the SES v2 SendEmail operation.
func (c *sesClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(params.BodyHTML), Charset: aws.String(charsetUTF8)},
	}
	if params.BodyText != "" {
		body.Text = &types.Content{Data: aws.String(params.BodyText), Charset: aws.String(charsetUTF8)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.config.SenderEmail),
		Destination:      &types.Destination{ToAddresses: []string{params.SendTo}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(params.Subject), Charset: aws.String(charsetUTF8)},
				Body:    body,
			},
		},
	}
	if replyTo := params.replyTo(c.config); replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}
	if params.Tag != "" {
		input.EmailTags = []types.MessageTag{{Name: aws.String("tag"), Value: aws.String(strings.ReplaceAll(sanitizeFilename(params.Tag), ".", "_"))}}
	}
	if c.config.SESConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(c.config.SESConfigurationSet)
	}

	if _, err := c.api.SendEmail(ctx, input); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}
