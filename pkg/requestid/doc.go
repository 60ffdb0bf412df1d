// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-] only, and otherwise generates a UUIDv4. The chosen ID is
// echoed in the response header and stored in the request context.
//
//	r.Use(requestid.Middleware)
//	id := requestid.FromContext(r.Context())
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// written with a request context carries a request_id attribute.
package requestid
