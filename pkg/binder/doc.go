// Package binder decodes HTTP request data into Go structs.
//
// Each binder is a Func that either fills the target or reports
// ErrBinderNotApplicable when the request is not in its format, so a handler
// can list several binders and let the request's content type pick one:
//
//	handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form())
//
// Available binders:
//   - JSON binds application/json bodies with unknown-field rejection and a 1MB limit.
//   - Form binds url-encoded and multipart bodies into `form:"..."` fields.
//   - Signals binds Datastar signal payloads (Datastar-Request: true).
//   - Path binds router parameters into `path:"..."` fields, chi.URLParam by default.
//
// All binders strip control characters other than line breaks and tabs from
// bound strings. Trimming and other normalization belong to the caller.
package binder
