// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv (an optional .env file in the working
// directory is read once) and github.com/caarlos0/env/v11 (struct tag
// parsing). Each configuration type is parsed at most once per process and
// cached; later Load calls for the same type return the cached copy. Reset
// clears the cache, which tests use to re-read the environment.
//
// # Usage
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
//
// # Errors
//
// Parsing failures wrap ErrParsingConfig; a nil destination returns
// ErrNilPointer.
package config
