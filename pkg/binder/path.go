package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Path binds URL parameters into fields tagged `path:"name"` using extractor.
// A nil extractor defaults to chi.URLParam. Path always applies, so list it
// first when combining binders.
//
//	type FieldRequest struct {
//		Field string `path:"field"`
//	}
//	r.Post("/contact/validate/{field}", handler.Wrap(h, handler.WithBinders(binder.Path(nil), binder.Form())))
func Path(extractor func(r *http.Request, key string) string) Func {
	if extractor == nil {
		extractor = chi.URLParam
	}
	return func(r *http.Request, v any) error {
		return bindTagged(v, "path", func(key string) []string {
			if value := extractor(r, key); value != "" {
				return []string{value}
			}
			return nil
		}, ErrInvalidPath)
	}
}
