package logger

import (
	"context"
	"sync"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

var (
	globalLogger *ZapLogger
	mu           sync.RWMutex
)

// SetGlobalLogger sets the process-wide logger; call once during startup
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, creating a production logger
// when none was set
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		defaultLogger, err := zap.NewProduction()
		if err != nil {
			defaultLogger = zap.NewNop()
		}
		globalLogger = &ZapLogger{Logger: defaultLogger}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

func fromContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger()
	if txn := newrelic.FromContext(ctx); txn != nil {
		return l.WithNewRelicContext(txn)
	}
	return l.Logger
}

// InfoCtx logs with trace ids taken from ctx
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Info(msg, fields...)
}

// WarnCtx logs with trace ids taken from ctx
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Warn(msg, fields...)
}

// ErrorCtx logs with trace ids taken from ctx
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}

// DebugCtx logs with trace ids taken from ctx
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Debug(msg, fields...)
}
