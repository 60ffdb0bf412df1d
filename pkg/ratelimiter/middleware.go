package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/clientip"
)

// maxKeyLength is the maximum allowed length for a rate limit key.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the resolved client address.
// It prefers the value stored by clientip.Middleware.
func ByClientIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// ByPath keys requests by URL path.
func ByPath(r *http.Request) string {
	return r.URL.Path
}

// Composite combines multiple key functions into one.
// Long keys (>64 chars) are hashed using FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}

		return combined
	}
}

// ErrorResponder writes the response for denied or failed checks.
// result is nil when err is not nil.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, result *Result, err error)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	responder ErrorResponder
}

// WithErrorResponder overrides the default plain-text responses.
func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.responder = fn
		}
	}
}

func defaultResponder(w http.ResponseWriter, r *http.Request, result *Result, err error) {
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// Middleware creates an HTTP middleware for rate limiting.
// Requests whose key is empty pass through unchecked.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{responder: defaultResponder}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				cfg.responder(w, r, nil, err)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retryAfter := int(result.RetryAfter().Seconds()); retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}
				cfg.responder(w, r, result, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
