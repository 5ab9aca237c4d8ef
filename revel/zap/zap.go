package zap

import (
	"context"
	"time"

	logpkg "github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed structured logging field (zap alias kept for convenience methods).
type Field = zap.Field

// Handler is a strict structured sink that implements log.Handler.
//
// It intentionally does not expose printf/line/fatal helpers.
type Handler struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Handler implements logpkg.Handler.
var _ logpkg.Handler = (*Handler)(nil)

func (h *Handler) must() *zap.Logger {
	if h == nil || h.logger == nil {
		return zap.NewNop()
	}

	return h.logger
}

// ---------------------------------------------------------------------------
// log.Handler interface methods
// ---------------------------------------------------------------------------

// Log implements log.Handler. It dispatches to the appropriate zap level.
// If ctx carries an active OpenTelemetry span, trace_id and span_id are
// automatically appended so logs correlate with distributed traces.
func (h *Handler) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := logFieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	switch level {
	case logpkg.LevelDebug:
		h.must().Debug(msg, zapFields...)
	case logpkg.LevelInfo:
		h.must().Info(msg, zapFields...)
	case logpkg.LevelWarn:
		h.must().Warn(msg, zapFields...)
	case logpkg.LevelError:
		h.must().Error(msg, zapFields...)
	default:
		h.must().Info(msg, zapFields...)
	}
}

// Enabled reports whether the handler would emit a log at the given level.
func (h *Handler) Enabled(level logpkg.Level) bool {
	return h.must().Core().Enabled(logLevelToZap(level))
}

// SetLevel adjusts the handler's verbosity at runtime through the shared
// atomic level handle.
func (h *Handler) SetLevel(level logpkg.Level) {
	if h == nil || h.atomicLevel == (zap.AtomicLevel{}) {
		return
	}

	h.atomicLevel.SetLevel(logLevelToZap(level))
}

// Sync flushes buffered logs, respecting context cancellation.
func (h *Handler) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- h.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// ---------------------------------------------------------------------------
// Convenience methods (direct zap.Field access for performance-sensitive code)
// ---------------------------------------------------------------------------

// Raw returns the underlying zap logger.
func (h *Handler) Raw() *zap.Logger {
	return h.must()
}

// Level returns the runtime-adjustable level handle for this handler.
func (h *Handler) Level() zap.AtomicLevel {
	return h.atomicLevel
}

// Any creates a field with any value.
func Any(key string, value any) Field {
	return zap.Any(key, value)
}

// String creates a string field.
func String(key, value string) Field {
	return zap.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return zap.Int(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return zap.Bool(key, value)
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return zap.Duration(key, value)
}

// ErrorField creates an error field.
func ErrorField(err error) Field {
	return zap.Error(err)
}

// ---------------------------------------------------------------------------
// Internal conversion helpers
// ---------------------------------------------------------------------------

// logLevelToZap converts a log.Level to a zapcore.Level.
func logLevelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// logFieldsToZap converts log.Field values to zap.Field values.
func logFieldsToZap(fields []logpkg.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return zapFields
}
