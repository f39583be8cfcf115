package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is the context key for the attached logger.
type loggerKey struct{}

// WithLogger returns a context carrying logger. The runner threads the
// command's logger to workers this way.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger attached to ctx, or the default logger when
// none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
