package main

import (
	"errors"

	"github.com/dmitrymomot/contactform/modules/contact"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
	"github.com/dmitrymomot/contactform/pkg/redis"
)

type appConfig struct {
	Env                string   `env:"APP_ENV" envDefault:"development"`
	Name               string   `env:"APP_NAME" envDefault:"contactform"`
	LogLevel           string   `env:"LOG_LEVEL"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type settings struct {
	App       appConfig
	HTTP      httpserver.Config
	Email     email.Config
	Redis     redis.Config
	Contact   contact.Config
	RateLimit ratelimiter.Config
}

func loadSettings() (settings, error) {
	var s settings
	err := errors.Join(
		config.Load(&s.App),
		config.Load(&s.HTTP),
		config.Load(&s.Email),
		config.Load(&s.Redis),
		config.Load(&s.Contact),
		config.Load(&s.RateLimit),
	)
	return s, err
}
