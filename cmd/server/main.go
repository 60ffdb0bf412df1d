package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/contactform/modules/contact"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/environment"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
	"github.com/dmitrymomot/contactform/pkg/redis"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithLevelName(cfg.App.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var (
		locker contact.Locker = contact.NewMemoryLocker()
		checks []healthCheck
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		locker = contact.NewRedisLocker(client)
		checks = append(checks, redis.Healthcheck(client))
		log.Info("redis submission locks enabled", logger.Component("redis"))
	}

	submitter, err := contact.NewSubmitter(ctx, cfg.Contact, cfg.Email)
	if err != nil {
		return err
	}
	log.Info("contact delivery configured", slog.String("delivery", cfg.Contact.Delivery))

	svc := contact.NewService(submitter,
		contact.WithLocker(locker),
		contact.WithLockTTL(cfg.Contact.LockTTL),
		contact.WithLogger(log),
	)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	router := newRouter(routerDeps{
		log:       log,
		env:       environment.Parse(cfg.App.Env),
		origins:   cfg.App.CORSAllowedOrigins,
		handler:   contact.NewHandler(svc, cfg.Contact.NoticeTTL, nil, log),
		limiter:   limiter,
		readiness: checks,
	})

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
