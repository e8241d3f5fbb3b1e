// Package logging carries a logrus.FieldLogger on a context.Context so the
// algorithms can emit debug summaries without a package-level logger.
package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Logger returns the logger stored on ctx, or logrus.StandardLogger().
func Logger(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return logrus.StandardLogger()
	}
	if val := ctx.Value(loggerContextKeyVal); val != nil {
		if logger, ok := val.(logrus.FieldLogger); ok {
			return logger
		}
	}

	return logrus.StandardLogger()
}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, logger)
}
