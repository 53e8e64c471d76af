package sdk

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the logging surface components write to. *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(template string, args ...any)
	Infow(msg string, keysAndValues ...any)
	Warnf(template string, args ...any)
	Warnw(msg string, keysAndValues ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("divagov-logger")

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerValue, logger)
}

// LoggerFrom returns the logger carried by ctx, falling back to a production zap logger.
func LoggerFrom(ctx context.Context) Logger {
	value := ctx.Value(ContextLoggerValue)
	logger, ok := value.(Logger)
	if !ok {
		logger = zap.Must(zap.NewProduction()).Sugar()
	}

	return logger
}
