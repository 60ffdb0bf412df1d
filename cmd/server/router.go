package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/modules/contact"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/environment"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

type healthCheck = func(context.Context) error

type routerDeps struct {
	log       *slog.Logger
	env       environment.Environment
	origins   []string
	handler   *contact.Handler
	limiter   ratelimiter.RateLimiter
	readiness []healthCheck
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(d.env))
	r.Use(handler.Recover(d.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Datastar-Request", requestid.Header},
		ExposedHeaders: []string{requestid.Header, "Retry-After", "X-RateLimit-Remaining"},
		MaxAge:         300,
	}))

	r.Get("/healthz", httpserver.HealthCheckHandler(d.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(d.log, d.readiness...))

	var submitMiddlewares []func(http.Handler) http.Handler
	if d.limiter != nil {
		submitMiddlewares = append(submitMiddlewares,
			ratelimiter.Middleware(d.limiter, ratelimiter.ByClientIP, ratelimiter.WithErrorResponder(rateLimitResponder)),
		)
	}
	r.Mount("/", contact.Router(d.handler, contact.RouterOptions{SubmitMiddlewares: submitMiddlewares}))

	return r
}

func rateLimitResponder(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
	httpErr := handler.ErrTooManyRequests
	if err != nil {
		httpErr = handler.ErrServiceUnavailable
	}
	if handler.WantsJSON(r) {
		_ = handler.JSONError(httpErr).Render(w, r)
		return
	}
	http.Error(w, httpErr.Key, httpErr.Code)
}
