package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures, e.g. a malformed CONTACT_SUBMIT_DELAY.
	ErrParsingConfig   = errors.New("config: cannot parse environment")
	ErrConfigNotLoaded = errors.New("config: not loaded")
	ErrNilPointer      = errors.New("config: nil target")
)
