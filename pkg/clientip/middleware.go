package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

type contextKey struct{}

// Middleware resolves the caller address once per request and stores it in
// the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(SetIPToContext(r.Context(), GetIP(r))))
	})
}

// SetIPToContext returns a copy of ctx carrying ip.
func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// GetIPFromContext returns the address stored by Middleware, or "".
func GetIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor adds client_ip to records logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := GetIPFromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}
