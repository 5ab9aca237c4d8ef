package revel

import (
	"context"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// scopeFrame is one temporarily pushed sub-context. Frames form a per-logger
// chain carried on the caller's context, newest first, so unwinding is the
// ordinary lexical discarding of the derived context: it runs on every exit
// path and concurrent call stacks never see each other's frames.
type scopeFrame struct {
	key    string
	fields map[string]any
	prev   *scopeFrame
}

// scopeKey identifies one logger's frame chain inside a context. Scopes
// entered on one logger are invisible to records of another logger sharing
// the same context.
type scopeKey struct{ logger *Logger }

// WithContextParams pushes a named sub-context under key, visible to every
// log call on this logger (and on any binding derived from it) that is made
// with the returned context.
//
// The sub-context lasts exactly as long as the returned context is in use:
// logging with the parent context again is the restoration, so same-key
// nesting unwinds LIFO and an inner scope's exit re-exposes the outer value.
func (l *Logger) WithContextParams(ctx context.Context, key string, fields ...log.Field) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	sub := make(map[string]any, len(fields))
	for _, f := range fields {
		sub[f.Key] = f.Value
	}

	head, _ := ctx.Value(scopeKey{l}).(*scopeFrame)

	return context.WithValue(ctx, scopeKey{l}, &scopeFrame{
		key:    key,
		fields: sub,
		prev:   head,
	})
}

// scopeChain returns the newest frame pushed for this logger, or nil.
func (l *Logger) scopeChain(ctx context.Context) *scopeFrame {
	if ctx == nil {
		return nil
	}

	head, _ := ctx.Value(scopeKey{l}).(*scopeFrame)

	return head
}
