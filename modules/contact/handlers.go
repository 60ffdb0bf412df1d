package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/environment"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

// Visitor-facing messages for submission failures.
const (
	MsgSubmissionInProgress = "Your previous message is still being sent. Please wait a moment."
	MsgDeliveryFailed       = "We couldn't send your message right now. Please try again later."
)

// HTTP errors returned by the contact endpoints.
var (
	ErrHTTPSubmissionInProgress = handler.NewHTTPError(http.StatusConflict, "submission_in_progress")
	ErrHTTPDeliveryFailed       = handler.NewHTTPError(http.StatusBadGateway, "delivery_failed")
	ErrHTTPLockUnavailable      = handler.NewHTTPError(http.StatusServiceUnavailable, "lock_unavailable")
	ErrHTTPUnknownField         = handler.NewHTTPError(http.StatusNotFound, "unknown_field")
)

// SubmitResponse is the JSON body of a submission answer.
type SubmitResponse struct {
	Result
	Receipt *Receipt `json:"receipt,omitempty"`
}

// FieldResponse is the JSON body of a single-field validation.
type FieldResponse struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type fieldRequest struct {
	Field   string `path:"field" json:"-"`
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message"`
}

func (r fieldRequest) data() FormData {
	return FormData{Name: r.Name, Email: r.Email, Phone: r.Phone, Message: r.Message}
}

// Handler serves the contact form endpoints.
type Handler struct {
	svc          *Service
	noticeTTL    time.Duration
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// NewHandler creates the HTTP layer over svc. The success notice is removed
// after noticeTTL; a nil errorHandler uses handler.NewErrorHandler with
// this package's error views.
func NewHandler(svc *Service, noticeTTL time.Duration, errorHandler handler.ErrorHandler[handler.Context], log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
			ErrorPage:   ErrorPage,
			ErrorToast:  ErrorToast,
			ToastTarget: ToastTarget,
		})
	}
	return &Handler{svc: svc, noticeTTL: noticeTTL, errorHandler: errorHandler, log: log}
}

func (h *Handler) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(Page(FormParams{}))
}

func (h *Handler) submit(ctx handler.Context, data FormData) handler.Response {
	data = data.Normalize()
	r := ctx.Request()

	switch {
	case handler.IsDataStar(r):
		return handler.SSE(func(stream handler.StreamContext) error {
			return h.streamSubmit(stream, data)
		})
	case handler.WantsJSON(r):
		return h.apiSubmit(ctx, data)
	}

	result := Validate(data)
	if !result.IsValid {
		return handler.TemplWithStatus(http.StatusUnprocessableEntity, Page(FormParams{
			Data:        data,
			Errors:      result.Errors,
			FieldErrors: FieldErrors(data),
		}))
	}

	if _, err := h.svc.Submit(ctx, submitterKey(r), data).AwaitContext(ctx); err != nil {
		return handler.Error(submitError(err))
	}
	return handler.Templ(Page(FormParams{Sent: true}))
}

func (h *Handler) api(ctx handler.Context, data FormData) handler.Response {
	return h.apiSubmit(ctx, data.Normalize())
}

// apiError answers every API failure with the JSON error envelope.
func (h *Handler) apiError(ctx handler.Context, err error) {
	info := handler.ClassifyError(err)
	h.log.LogAttrs(ctx, info.LogLevel, "contact api error",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		logger.Component("contact"),
	)
	if renderErr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		h.log.ErrorContext(ctx, "failed to render JSON error", logger.Error(renderErr))
	}
}

func (h *Handler) apiSubmit(ctx handler.Context, data FormData) handler.Response {
	result := Validate(data)
	if !result.IsValid {
		return handler.JSON(SubmitResponse{Result: result}, handler.WithJSONStatus(http.StatusUnprocessableEntity))
	}

	receipt, err := h.svc.Submit(ctx, submitterKey(ctx.Request()), data).AwaitContext(ctx)
	if err != nil {
		return handler.JSONError(submitError(err))
	}
	return handler.JSON(SubmitResponse{Result: result, Receipt: &receipt})
}

func (h *Handler) streamSubmit(stream handler.StreamContext, data FormData) error {
	result := Validate(data)
	if !result.IsValid {
		errs := FieldErrors(data)
		patches := []handler.TemplPatch{handler.Patch(ErrorList(result.Errors))}
		for _, field := range Fields {
			patches = append(patches, handler.Patch(FieldError(field, errs[field])))
		}
		return stream.SendMultiple(patches...)
	}

	if err := stream.SendMultiple(
		handler.Patch(ErrorList(nil)),
		handler.Patch(SubmitButton(true)),
	); err != nil {
		return err
	}

	_, err := h.svc.Submit(stream, submitterKey(stream.Request()), data).AwaitContext(stream)
	if stream.Err() != nil {
		return nil
	}
	if buttonErr := stream.SendComponent(SubmitButton(false)); buttonErr != nil {
		return buttonErr
	}
	if err != nil {
		return h.sendFailure(stream, err)
	}

	patches := []handler.TemplPatch{
		handler.Patch(SuccessNotice(), handler.WithTarget(Selector(FormID)), handler.WithPatchMode(handler.PatchBefore)),
	}
	for _, field := range Fields {
		patches = append(patches, handler.Patch(FieldError(field, "")))
	}
	if err := stream.SendMultiple(patches...); err != nil {
		return err
	}
	if err := stream.SendSignals(FormData{}.Signals()); err != nil {
		return err
	}

	return h.expireNotice(stream)
}

func (h *Handler) sendFailure(stream handler.StreamContext, err error) error {
	msg := MsgDeliveryFailed
	if errors.Is(err, ErrSubmissionInProgress) {
		msg = MsgSubmissionInProgress
	}
	if environment.IsDevelopment(stream) {
		msg += " (" + err.Error() + ")"
	}
	info := handler.ClassifyError(submitError(err))
	h.log.LogAttrs(stream, info.LogLevel, "contact submission failed",
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		logger.Component("contact"),
	)
	return stream.SendComponent(
		ErrorToast(handler.ErrorToastParams{Message: msg, Type: info.Type}),
		handler.WithTarget(ToastTarget),
		handler.WithPatchMode(handler.PatchPrepend),
	)
}

// expireNotice keeps the stream open until the notice should disappear.
func (h *Handler) expireNotice(stream handler.StreamContext) error {
	if h.noticeTTL <= 0 {
		return nil
	}
	timer := time.NewTimer(h.noticeTTL)
	defer timer.Stop()

	select {
	case <-stream.Done():
		return nil
	case <-timer.C:
		return stream.RemoveElement(Selector(SuccessNoticeID))
	}
}

func (h *Handler) validateField(ctx handler.Context, req fieldRequest) handler.Response {
	if !IsKnownField(req.Field) {
		return handler.Error(ErrHTTPUnknownField)
	}

	value, _ := req.data().Value(req.Field)
	msg := ValidateField(req.Field, value)

	if handler.IsDataStar(ctx.Request()) {
		return handler.Templ(FieldError(req.Field, msg))
	}
	return handler.JSON(FieldResponse{Field: req.Field, Error: msg})
}

// submitterKey identifies the sender for the in-flight guard. The address
// comes from proxy headers, so the service must sit behind a proxy that
// overwrites them.
func submitterKey(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// submitError maps service errors to HTTP errors, keeping the cause.
func submitError(err error) error {
	switch {
	case errors.Is(err, ErrSubmissionInProgress):
		return errors.Join(ErrHTTPSubmissionInProgress, err)
	case errors.Is(err, ErrLockUnavailable):
		return errors.Join(ErrHTTPLockUnavailable, err)
	case errors.Is(err, ErrDeliveryFailed):
		return errors.Join(ErrHTTPDeliveryFailed, err)
	case errors.Is(err, context.DeadlineExceeded):
		return errors.Join(handler.ErrGatewayTimeout, err)
	default:
		return err
	}
}
