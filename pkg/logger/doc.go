// Package logger builds *slog.Logger values with functional options and
// injects request-scoped attributes pulled from context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the format,
// applies static attributes, and wraps the result in a context handler,
// which runs every registered ContextExtractor on each record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "contactform"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "contact form submitted",
//	    logger.SubmissionID(receipt.ID),
//	    logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Helpers taking an
// optional value return an empty slog.Attr, which slog drops, when the value
// is missing.
package logger
