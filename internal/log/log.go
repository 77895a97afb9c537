// Package log carries a *log.Logger through a context. Handlers log through
// FromContext so debug output only appears when the server installed a
// logger for the request.
package log

import (
	"context"
	"io"
	stdlog "log"
)

type loggerKey struct{}

var discard = stdlog.New(io.Discard, "", 0)

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *stdlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything.
func FromContext(ctx context.Context) *stdlog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*stdlog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}
