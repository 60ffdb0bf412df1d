package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/contactform/pkg/logger"
)

// LoggerExtractor returns a context extractor for logger.WithContextExtractors.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return logger.RequestID(requestID), true
		}
		return slog.Attr{}, false
	}
}
