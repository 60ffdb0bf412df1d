package ratelimiter

import (
	"context"
	"time"
)

// Store keeps token bucket state per key.
//
// ConsumeTokens returns the tokens left after taking n; a negative value
// means the request is denied and resetAt tells when the bucket refills.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, n int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum tokens (bucket capacity)
	Remaining int       // Tokens remaining
	ResetAt   time.Time // Time when tokens will be refilled
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket configuration.
// The defaults allow a burst of 10 contact submissions per client,
// refilled at one token every six seconds.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"6s"`
}
