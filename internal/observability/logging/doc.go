// Package logging provides structured logging utilities with context propagation.
//
// Loggers are log/slog JSON loggers by default. The HTTP logging middleware
// stores a request-scoped logger (request ID and trace ID attached) in the
// request context; handlers retrieve it with FromContext.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	logger.Info("server starting", slog.String("addr", ":8080"))
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Info("serving overview")
//	}
package logging
