package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("ratelimiter: invalid bucket config")
	ErrInvalidTokenCount = errors.New("ratelimiter: token count must be positive")
	ErrContextCancelled  = errors.New("ratelimiter: context done")
	// ErrStoreUnavailable marks backend failures; the middleware answers 503.
	ErrStoreUnavailable = errors.New("ratelimiter: store unavailable")
)
