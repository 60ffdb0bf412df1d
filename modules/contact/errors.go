package contact

import "errors"

var (
	// ErrInvalidSubmission is returned when a submission fails validation.
	ErrInvalidSubmission = errors.New("contact: submission is not valid")
	// ErrSubmissionInProgress is returned while another submission for the same key is in flight.
	ErrSubmissionInProgress = errors.New("contact: submission already in progress")
	// ErrDeliveryFailed wraps submitter failures.
	ErrDeliveryFailed = errors.New("contact: delivery failed")
	// ErrUnknownField is returned for field names the form does not have.
	ErrUnknownField = errors.New("contact: unknown field")
	// ErrUnknownDelivery is returned for an unsupported CONTACT_DELIVERY value.
	ErrUnknownDelivery = errors.New("contact: unknown delivery mode")
	// ErrMissingRecipient is returned when email delivery has no CONTACT_RECIPIENT.
	ErrMissingRecipient = errors.New("contact: recipient is required for email delivery")
	// ErrLockUnavailable wraps locker backend failures.
	ErrLockUnavailable = errors.New("contact: submission lock unavailable")
)
