package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineErrorType maps HTTP status codes to error types for UI display
func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// ClassifyError maps err to a status code, a client-safe message and a log level.
// Unknown errors become 500 with a generic message.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}

	// Validation errors win over HTTP errors when both are present.
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusUnprocessableEntity
		info.Message = validationErr.Error()
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, r *http.Request, err error, info ErrorInfo) {
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.WarnContext(ctx, "no error toast component configured for DataStar request",
			logger.Component("error_handler"),
		)
		return
	}

	response := Templ(
		cfg.ErrorToast(ErrorToastParams{Message: info.Message, Type: info.Type, RequestID: requestID}),
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)
	if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error toast",
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderHTTPResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	response := TemplWithStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	}))
	if err := response.Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.ErrorContext(ctx, "failed to render error page",
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type:
// JSON clients get an error envelope, Datastar requests a toast patch, and
// everything else a full error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		requestID := requestid.FromContext(r.Context())
		info := ClassifyError(err)
		logError(log, r, err, info)

		switch {
		case WantsJSON(r):
			if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.ErrorContext(ctx, "failed to render JSON error", logger.Error(renderErr))
			}
		case IsDataStar(r):
			renderDataStarResponse(ctx, cfg, info, requestID, log)
		default:
			renderHTTPResponse(ctx, cfg, info, requestID, log)
		}
	}
}
