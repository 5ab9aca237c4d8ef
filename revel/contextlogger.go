package revel

import (
	"context"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// ContextLogger is a lightweight derived view over a parent Logger. Every
// call routed through it carries one fixed key/value pair as a top-level
// call field; the parent's state is never touched, so multiple bindings over
// the same parent can be used concurrently without leaking into each other.
type ContextLogger struct {
	parent *Logger
	bound  log.Field
}

// Bind derives a ContextLogger carrying the fixed (key, value) pair.
func (l *Logger) Bind(key string, value any) *ContextLogger {
	return &ContextLogger{
		parent: l,
		bound:  log.Any(key, value),
	}
}

// Parent returns the Logger this binding delegates to.
func (c *ContextLogger) Parent() *Logger {
	return c.parent
}

// Log emits one record at the given level through the parent, overlaying the
// bound field.
func (c *ContextLogger) Log(ctx context.Context, level log.Level, msg string, fields ...log.Field) {
	c.parent.emit(ctx, level, msg, []log.Field{c.bound}, fields)
}

// Debug emits one record at debug severity.
func (c *ContextLogger) Debug(ctx context.Context, msg string, fields ...log.Field) {
	c.Log(ctx, log.LevelDebug, msg, fields...)
}

// Info emits one record at info severity.
func (c *ContextLogger) Info(ctx context.Context, msg string, fields ...log.Field) {
	c.Log(ctx, log.LevelInfo, msg, fields...)
}

// Warn emits one record at warn severity.
func (c *ContextLogger) Warn(ctx context.Context, msg string, fields ...log.Field) {
	c.Log(ctx, log.LevelWarn, msg, fields...)
}

// Error emits one record at error severity.
func (c *ContextLogger) Error(ctx context.Context, msg string, fields ...log.Field) {
	c.Log(ctx, log.LevelError, msg, fields...)
}
