package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/contactform/pkg/email"
)

// Delivery modes for CONTACT_DELIVERY.
const (
	DeliverySimulated = "simulated"
	DeliveryDev       = "dev"
	DeliveryPostmark  = "postmark"
	DeliverySES       = "ses"
)

// Config holds contact form settings.
type Config struct {
	Delivery    string        `env:"CONTACT_DELIVERY" envDefault:"simulated"`
	Recipient   string        `env:"CONTACT_RECIPIENT"`
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" envDefault:"2s"`
	NoticeTTL   time.Duration `env:"CONTACT_NOTICE_TTL" envDefault:"5s"`
	LockTTL     time.Duration `env:"CONTACT_LOCK_TTL" envDefault:"30s"`
	DevMailDir  string        `env:"CONTACT_DEV_MAIL_DIR" envDefault:"./tmp/mail"`
}

// NewSubmitter builds the Submitter selected by cfg.Delivery.
// Email deliveries require cfg.Recipient.
func NewSubmitter(ctx context.Context, cfg Config, mailCfg email.Config) (Submitter, error) {
	if cfg.Delivery == DeliverySimulated || cfg.Delivery == "" {
		return NewSimulatedSubmitter(cfg.SubmitDelay), nil
	}

	switch cfg.Delivery {
	case DeliveryDev, DeliveryPostmark, DeliverySES:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDelivery, cfg.Delivery)
	}
	if cfg.Recipient == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingRecipient, cfg.Delivery)
	}

	var (
		sender email.EmailSender
		err    error
	)
	switch cfg.Delivery {
	case DeliveryDev:
		sender = email.NewDevSender(cfg.DevMailDir)
	case DeliveryPostmark:
		sender, err = email.NewPostmarkClient(mailCfg)
	case DeliverySES:
		sender, err = email.NewSESClient(ctx, mailCfg)
	}
	if err != nil {
		return nil, err
	}

	return NewEmailSubmitter(sender, cfg.Recipient), nil
}
