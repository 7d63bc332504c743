package internal

import (
	"context"
	"log/slog"

	"github.com/go-logr/logr"
)

// ContextWithLogger attaches a request-scoped logger backed by the slog
// handler h.
func ContextWithLogger(ctx context.Context, h slog.Handler, keysAndValues ...any) context.Context {
	return logr.NewContext(ctx, logr.FromSlogHandler(h).WithValues(keysAndValues...))
}

// LoggerFromContext retrieves a logger from the context or returns one that
// discards everything.
func LoggerFromContext(ctx context.Context) logr.Logger {
	if tmpLog, err := logr.FromContext(ctx); err != nil {
		return logr.Discard()
	} else {
		return tmpLog
	}
}
