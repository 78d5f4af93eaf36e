package spawn

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// GetLogger returns the logger stored by WithLogger, or defaultLogger.
// A nil defaultLogger falls back to zap.L().
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.L()
}
