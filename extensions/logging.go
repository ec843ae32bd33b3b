// Package extensions provides ready-made jedi extensions for cross-cutting
// concerns: structured logging of construction steps and extraction tracing.
package extensions

import (
	"context"
	"time"

	"go.uber.org/zap"

	jedi "github.com/ChristianBelloni/je-di"
)

// LoggingExtension logs every construction step through a zap logger:
// successful steps at debug level with their duration, failing steps at
// error level with the step's error.
type LoggingExtension struct {
	jedi.BaseExtension
	logger *zap.Logger
}

// NewLoggingExtension creates a logging extension writing to logger
func NewLoggingExtension(logger *zap.Logger) *LoggingExtension {
	return &LoggingExtension{
		BaseExtension: jedi.NewBaseExtension("logging"),
		logger:        logger,
	}
}

func (e *LoggingExtension) Wrap(ctx context.Context, next func() (any, error), op *jedi.Operation) (any, error) {
	start := time.Now()
	result, err := next()

	fields := []zap.Field{
		zap.String("kind", string(op.Kind)),
		zap.String("resolver", op.Resolver),
		zap.String("target", op.Target),
		zap.Int("depth", op.Depth),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		e.logger.Error("construction step failed", append(fields, zap.Error(err))...)
		return result, err
	}

	e.logger.Debug("construction step completed", fields...)
	return result, err
}

func (e *LoggingExtension) OnError(err error, op *jedi.Operation) {
	if op.Kind != jedi.OpExtract {
		return
	}
	e.logger.Error("extraction aborted",
		zap.String("resolver", op.Resolver),
		zap.String("target", op.Target),
		zap.Error(err),
	)
}
