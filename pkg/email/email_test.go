package email_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/email/templates"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

func validParams() email.SendEmailParams {
	return email.SendEmailParams{
		SendTo:   "owner@example.com",
		ReplyTo:  "visitor@example.com",
		Subject:  "New contact form message",
		BodyHTML: "<p>Hello</p>",
		BodyText: "Hello",
		Tag:      "contact-form",
	}
}

func TestSendEmailParams_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validParams().Validate())

	p := validParams()
	p.ReplyTo = ""
	require.NoError(t, p.Validate(), "reply-to is optional")

	err := email.SendEmailParams{SendTo: "bad", ReplyTo: "also bad"}.Validate()
	require.ErrorIs(t, err, email.ErrInvalidParams)

	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"send_to", "reply_to", "subject", "body_html"}, verrs.Fields())

	p = validParams()
	p.Subject = strings.Repeat("s", email.MaxSubjectLength+1)
	assert.ErrorIs(t, p.Validate(), email.ErrInvalidParams)
}

func TestNewPostmarkClient(t *testing.T) {
	t.Parallel()

	valid := email.Config{
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		SenderEmail:          "noreply@example.com",
	}
	client, err := email.NewPostmarkClient(valid)
	require.NoError(t, err)
	assert.NotNil(t, client)

	cases := map[string]func(c *email.Config){
		"no server token":  func(c *email.Config) { c.PostmarkServerToken = "" },
		"no account token": func(c *email.Config) { c.PostmarkAccountToken = "" },
		"no sender":        func(c *email.Config) { c.SenderEmail = "" },
		"bad sender":       func(c *email.Config) { c.SenderEmail = "noreply" },
		"bad support":      func(c *email.Config) { c.SupportEmail = "help desk@example.com" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			mutate(&cfg)
			_, err := email.NewPostmarkClient(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}

	assert.Panics(t, func() { email.MustNewPostmarkClient(email.Config{}) })
}

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESClient_SendEmail(t *testing.T) {
	t.Parallel()

	cfg := email.Config{
		SenderEmail:         "noreply@example.com",
		SupportEmail:        "support@example.com",
		SESConfigurationSet: "contact",
	}

	t.Run("builds input", func(t *testing.T) {
		t.Parallel()
		api := &fakeSES{}
		sender, err := email.NewSESClientWithAPI(api, cfg)
		require.NoError(t, err)

		require.NoError(t, sender.SendEmail(context.Background(), validParams()))
		in := api.input
		require.NotNil(t, in)
		assert.Equal(t, "noreply@example.com", aws.ToString(in.FromEmailAddress))
		assert.Equal(t, []string{"owner@example.com"}, in.Destination.ToAddresses)
		assert.Equal(t, []string{"visitor@example.com"}, in.ReplyToAddresses)
		assert.Equal(t, "New contact form message", aws.ToString(in.Content.Simple.Subject.Data))
		assert.Equal(t, "<p>Hello</p>", aws.ToString(in.Content.Simple.Body.Html.Data))
		assert.Equal(t, "Hello", aws.ToString(in.Content.Simple.Body.Text.Data))
		assert.Equal(t, "contact", aws.ToString(in.ConfigurationSetName))
		require.Len(t, in.EmailTags, 1)
		assert.Equal(t, "contact-form", aws.ToString(in.EmailTags[0].Value))
	})

	t.Run("falls back to support reply-to", func(t *testing.T) {
		t.Parallel()
		api := &fakeSES{}
		sender, err := email.NewSESClientWithAPI(api, cfg)
		require.NoError(t, err)

		p := validParams()
		p.ReplyTo = ""
		require.NoError(t, sender.SendEmail(context.Background(), p))
		assert.Equal(t, []string{"support@example.com"}, api.input.ReplyToAddresses)
	})

	t.Run("wraps provider errors", func(t *testing.T) {
		t.Parallel()
		api := &fakeSES{err: errors.New("throttled")}
		sender, err := email.NewSESClientWithAPI(api, cfg)
		require.NoError(t, err)

		err = sender.SendEmail(context.Background(), validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorContains(t, err, "throttled")
	})

	t.Run("rejects invalid params before calling provider", func(t *testing.T) {
		t.Parallel()
		api := &fakeSES{}
		sender, err := email.NewSESClientWithAPI(api, cfg)
		require.NoError(t, err)

		err = sender.SendEmail(context.Background(), email.SendEmailParams{})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		assert.Nil(t, api.input)
	})
}

func TestNewSESClient_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := email.NewSESClient(context.Background(), email.Config{SenderEmail: "a@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig, "region is required")

	_, err = email.NewSESClient(context.Background(), email.Config{
		SESRegion:    "eu-west-1",
		SESAccessKey: "AKIA",
		SenderEmail:  "a@example.com",
	})
	assert.ErrorIs(t, err, email.ErrInvalidConfig, "keys must come in pairs")

	_, err = email.NewSESClientWithAPI(nil, email.Config{SenderEmail: "a@example.com"})
	assert.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestDevSender(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "mail")
	sender := email.NewDevSender(dir)

	require.NoError(t, sender.SendEmail(context.Background(), validParams()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.True(t, strings.HasSuffix(htmlFile, "_contact-form.html"))

	html, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello</p>", string(html))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var meta map[string]string
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "owner@example.com", meta["send_to"])
	assert.Equal(t, "visitor@example.com", meta["reply_to"])

	err = sender.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := templates.Render(context.Background(), templ.Raw("<b>hi</b>"))
	require.NoError(t, err)
	assert.Equal(t, "<b>hi</b>", out)
}
