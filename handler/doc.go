// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders and
// returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	http.Handle("/api/contact", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, contact.FormData](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, contact.FormData](errHandler),
//	))
//
// Responses:
//   - JSON and JSONError write the {"data"}/{"error"} envelope.
//   - Templ, TemplMulti and TemplWithStatus render templ components as HTML, or as
//     Datastar element patches when the request comes from Datastar.
//   - SSE streams a sequence of patches and signal updates through StreamContext.
//
// Errors: HTTPError carries a status and a client-facing key, ValidationError
// carries per-field messages. NewErrorHandler classifies both, logs them with
// the request ID, and answers in the format the client asked for.
//
// Recover is a middleware that logs panics as warnings and answers 500.
package handler
