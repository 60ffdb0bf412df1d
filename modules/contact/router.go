package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/pkg/binder"
)

// RouterOptions configures the contact routes.
type RouterOptions struct {
	// SubmitMiddlewares wrap the routes that start a submission,
	// typically a rate limiter.
	SubmitMiddlewares []func(http.Handler) http.Handler
}

// Router mounts the contact endpoints:
//
//	GET  /contact                  form page
//	POST /contact                  submit (Datastar stream, JSON or HTML)
//	POST /contact/validate/{field} blur validation of one field
//	POST /api/contact              JSON API
func Router(h *Handler, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Get("/contact", handler.Wrap(h.page))

	submit := handler.Wrap(h.submit,
		handler.WithBinders[handler.Context, FormData](
			binder.Signals(),
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FormData](h.errorHandler),
	)
	api := handler.Wrap(h.api,
		handler.WithBinders[handler.Context, FormData](binder.JSON(), binder.Form()),
		handler.WithErrorHandler[handler.Context, FormData](h.apiError),
	)

	r.Group(func(r chi.Router) {
		r.Use(opts.SubmitMiddlewares...)
		r.Post("/contact", submit)
		r.Post("/api/contact", api)
	})

	r.Post("/contact/validate/{field}", handler.Wrap(h.validateField,
		handler.WithBinders[handler.Context, fieldRequest](
			binder.Path(nil),
			binder.Signals(),
			binder.JSON(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, fieldRequest](h.errorHandler),
	))

	return r
}
