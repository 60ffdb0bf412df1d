// Package clientip extracts the originating client's IP address from an
// *http.Request when the service runs behind CDNs or reverse proxies.
//
// GetIP checks, in order, the provider headers in DefaultHeaders
// (Cloudflare, DigitalOcean, Fly.io), X-Forwarded-For (first valid entry),
// X-Real-IP, and finally RemoteAddr. Every candidate is parsed with
// net.ParseIP so malformed values are skipped.
//
// Middleware stores the resolved address in the request context, where
// GetIPFromContext retrieves it. The contact form uses the address as the
// rate-limit key and as the key for the one-submission-at-a-time guard.
//
// The headers are trusted as sent. Run behind a proxy that overwrites them.
//
//	r.Use(clientip.Middleware)
//	ip := clientip.GetIPFromContext(r.Context())
package clientip
