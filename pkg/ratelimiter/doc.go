// Package ratelimiter provides token bucket rate limiting with an in-memory
// store and HTTP middleware.
//
// A Bucket holds up to Capacity tokens and refills RefillRate tokens every
// RefillInterval. Each request consumes one token; a negative remainder means
// the request is denied.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)).Post("/contact", ...)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every checked response, plus Retry-After when the
// request is denied. WithErrorResponder replaces the default plain-text 429
// and 500 bodies.
//
// Config carries env tags (RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE,
// RATE_LIMIT_REFILL_INTERVAL) for use with config.Load.
package ratelimiter
