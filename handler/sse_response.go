package handler

import "net/http"

// SSEHandler drives a Datastar event stream. The stream closes when the
// handler returns or the client disconnects (ctx.Done()).
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-Datastar requests with 400 and runs the handler otherwise.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that streams a sequence of UI updates.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendSignal("sending", true); err != nil {
//			return err
//		}
//		receipt, err := service.Submit(stream, data).AwaitContext(stream)
//		...
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
