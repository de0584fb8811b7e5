// Package log carries a structured logger through context, falling back to a
// shared JSON logger when none was attached.
package log

import (
	"context"
	"log/slog"
	"os"
)

var (
	defaultLevel  slog.LevelVar
	defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: &defaultLevel,
	}))
)

type contextKey struct{}

var loggerKey = contextKey{}

// Ctx returns the logger attached to the context, or the default logger.
func Ctx(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

// With returns a new context carrying the given logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetDebug switches the default logger between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		defaultLevel.Set(slog.LevelDebug)
	} else {
		defaultLevel.Set(slog.LevelInfo)
	}
}
