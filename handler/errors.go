package handler

import (
	"errors"
	"net/http"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed on a non-Datastar request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
)

// HTTPError represents an HTTP error with status code and translation key.
// The Key is what clients see; it doubles as an i18n lookup key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "not_found", "conflict")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Errors used by the contact endpoints and middleware.
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrBadGateway           = HTTPError{Code: http.StatusBadGateway, Key: "bad_gateway"}
	ErrServiceUnavailable   = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrGatewayTimeout       = HTTPError{Code: http.StatusGatewayTimeout, Key: "gateway_timeout"}
)

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that hands err to the configured error handler
// instead of writing anything itself.
func Error(err error) Response {
	return errorResponse{err: err}
}
