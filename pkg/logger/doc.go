// Package logger builds log/slog loggers with context extraction.
//
// A ContextExtractor pulls one attribute out of a context on every log call,
// so request-scoped values such as request IDs land in every record:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id := middleware.GetReqID(ctx); id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.NewWithConfig(cfg, os.Stdout, requestID)
//	log.DebugContext(ctx, "form validated", slog.String("form", "contact"))
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a
// DSN is configured.
//
// NewLogHandlerDecorator wraps any slog.Handler with the same behavior.
// NewNope returns a logger that discards everything; form definitions use it
// when no logger is configured.
package logger
