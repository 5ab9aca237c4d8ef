package revel

import (
	"context"
	"strings"
	"sync"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

const (
	defaultSuccessMessage = "success"
	defaultFailMessage    = "failed"
)

// Logger is a structured, context-carrying logger.
//
// Every emitted record combines the per-call fields (top level) with the
// logger's persistent and scoped context, nested under a single key equal to
// the logger's name. A Logger is safe for concurrent use.
type Logger struct {
	name        string
	handler     log.Handler
	store       *ContextStore
	successMsg  string
	failMsg     string
	handleError bool

	closeOnce sync.Once
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithSuccessMessage sets the default success message emitted by message scopes.
func WithSuccessMessage(msg string) Option {
	return func(l *Logger) {
		l.successMsg = msg
	}
}

// WithFailMessage sets the default failure message emitted by message scopes.
func WithFailMessage(msg string) Option {
	return func(l *Logger) {
		l.failMsg = msg
	}
}

// WithHandleError makes message scopes and wrapped calls consume failures
// after recording them instead of propagating them to the caller.
func WithHandleError(handle bool) Option {
	return func(l *Logger) {
		l.handleError = handle
	}
}

// WithFields seeds the logger's persistent context at construction.
func WithFields(fields ...log.Field) Option {
	return func(l *Logger) {
		for _, f := range fields {
			l.store.Set(f.Key, f.Value)
		}
	}
}

// WithLevel applies an initial level to the logger's handler.
func WithLevel(level log.Level) Option {
	return func(l *Logger) {
		l.handler.SetLevel(level)
	}
}

// New creates a Logger and registers it for global level broadcasts.
//
// The name doubles as the context namespace key in every emitted record.
// Missing name or handler fails fast; there is no recovery path for a
// misconfigured logger.
func New(name string, handler log.Handler, opts ...Option) (*Logger, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}

	if handler == nil {
		return nil, ErrMissingHandler
	}

	l := &Logger{
		name:       name,
		handler:    handler,
		store:      NewContextStore(),
		successMsg: defaultSuccessMessage,
		failMsg:    defaultFailMessage,
	}

	for _, opt := range opts {
		opt(l)
	}

	registry.register(l)

	return l, nil
}

// Name returns the logger's name, which is also its namespace key.
func (l *Logger) Name() string {
	return l.name
}

// Handler returns the sink this logger emits through.
//
//nolint:ireturn
func (l *Logger) Handler() log.Handler {
	return l.handler
}

// SetContext inserts or overwrites one persistent context field.
func (l *Logger) SetContext(key string, value any) {
	l.store.Set(key, value)
}

// RemoveContext deletes one persistent context field; no-op if absent.
func (l *Logger) RemoveContext(key string) {
	l.store.Remove(key)
}

// SetLevel adjusts the logger's handler level at runtime.
func (l *Logger) SetLevel(level log.Level) {
	l.handler.SetLevel(level)
}

// Close deregisters the logger from global broadcasts and flushes its
// handler. Callers own this call; registry entries are not garbage-collected.
func (l *Logger) Close(ctx context.Context) error {
	var err error

	l.closeOnce.Do(func() {
		registry.deregister(l)
		err = l.handler.Sync(ctx)
	})

	return err
}

// Log emits one record at the given level.
func (l *Logger) Log(ctx context.Context, level log.Level, msg string, fields ...log.Field) {
	l.emit(ctx, level, msg, nil, fields)
}

// Debug emits one record at debug severity.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...log.Field) {
	l.emit(ctx, log.LevelDebug, msg, nil, fields)
}

// Info emits one record at info severity.
func (l *Logger) Info(ctx context.Context, msg string, fields ...log.Field) {
	l.emit(ctx, log.LevelInfo, msg, nil, fields)
}

// Warn emits one record at warn severity.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...log.Field) {
	l.emit(ctx, log.LevelWarn, msg, nil, fields)
}

// Error emits one record at error severity.
func (l *Logger) Error(ctx context.Context, msg string, fields ...log.Field) {
	l.emit(ctx, log.LevelError, msg, nil, fields)
}
