package cmdtree

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger returns a context carrying logger. [Parse] and [Run] report dropped tokens and
// resolution steps to it at debug level. Without a logger nothing is written.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return discardLogger
}
