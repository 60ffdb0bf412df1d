// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run listens synchronously, so address errors surface immediately wrapped in
// ErrStart, then blocks until the context is cancelled, SIGINT/SIGTERM is
// received, or Shutdown is called. Start and stop hooks run around the
// server life-cycle.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves /healthz (no checks) and /readyz (with checks
// such as redis.Healthcheck).
package httpserver
