package redis

import "errors"

var (
	ErrEmptyConnectionURL   = errors.New("redis: connection url is empty")
	ErrInvalidConnectionURL = errors.New("redis: invalid connection url")
	ErrRedisNotReady        = errors.New("redis: server not ready before deadline")
	ErrHealthcheckFailed    = errors.New("redis: healthcheck failed")
)
