package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithLogger returns a context carrying the given logger. Request
// middleware uses this to attach a logger pre-tagged with the trace ID.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, log)
}

// FromContext retrieves the logger from the context, or nil if none was
// attached.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(contextKey{}).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling
// back to the provided default when the context carries none.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
