// Package logger wraps zap for structured logging around the planning
// service. The engine itself never logs — this wrapper lives at the
// service/CLI layer that calls it.
package logger

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.SugaredLogger with context plumbing and a couple of
// planning-specific field helpers.
type Logger struct {
	*zap.SugaredLogger
}

type ctxKey struct{}

// New builds a Logger for the given service name, environment
// ("development" or "production"), and minimum level.
func New(serviceName, environment, level string) (*Logger, error) {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	switch level {
	case "debug":
		cfg.Level.SetLevel(zapcore.DebugLevel)
	case "warn":
		cfg.Level.SetLevel(zapcore.WarnLevel)
	case "error":
		cfg.Level.SetLevel(zapcore.ErrorLevel)
	default:
		cfg.Level.SetLevel(zapcore.InfoLevel)
	}

	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", serviceName),
			zap.String("environment", environment),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Logger{zapLogger.Sugar()}, nil
}

// Default builds a development-mode logger, falling back to zap's bare
// development logger if config construction somehow fails.
func Default() *Logger {
	l, err := New("hos-planner", "development", "debug")
	if err != nil {
		zapLogger, _ := zap.NewDevelopment()
		return &Logger{zapLogger.Sugar()}
	}
	return l
}

// WithContext returns the logger stashed in ctx, or Default() if none was
// attached.
func WithContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Default()
}

// ToContext attaches l to ctx for downstream WithContext calls.
func ToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithPlanID returns a logger tagged with the correlation ID of one
// planning run.
func (l *Logger) WithPlanID(planID string) *Logger {
	return &Logger{l.SugaredLogger.With("plan_id", planID)}
}

// WithError returns a logger tagged with an error's message.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.SugaredLogger.With("error", err.Error())}
}

// Fatal logs at fatal level and terminates the process.
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.SugaredLogger.Fatalw(msg, args...)
	os.Exit(1)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
