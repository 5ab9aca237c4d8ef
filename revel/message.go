package revel

import (
	"context"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// ScopeFunc is the body of a message scope.
type ScopeFunc func(ctx context.Context) error

// Run executes fn inside a message scope using the logger's default
// success and failure messages.
func (l *Logger) Run(ctx context.Context, fn ScopeFunc) error {
	return l.RunWithMessage(ctx, l.successMsg, l.failMsg, fn)
}

// RunWithMessage executes fn inside a message scope, overriding the success
// and failure messages for this block only. Empty overrides fall back to the
// logger's defaults.
//
// Exactly one record is emitted per scope: an info record with the success
// message on clean exit, or a failure record carrying the captured
// exc = {error_type, error_value} pair otherwise. When the logger was built
// with WithHandleError(true) the failure is recorded at warn severity and
// consumed; otherwise it is recorded at error severity and propagated.
// Panics inside fn are captured the same way and re-raised unless consumed.
func (l *Logger) RunWithMessage(ctx context.Context, success, fail string, fn ScopeFunc) (err error) {
	if success == "" {
		success = l.successMsg
	}

	if fail == "" {
		fail = l.failMsg
	}

	defer func() {
		if r := recover(); r != nil {
			l.emitFailure(ctx, fail, capturePanic(r))

			if !l.handleError {
				panic(r)
			}

			err = panicToError(r)

			return
		}

		if err != nil {
			l.emitFailure(ctx, fail, captureError(err))

			if l.handleError {
				err = nil
			}

			return
		}

		l.emit(ctx, log.LevelInfo, success, nil, nil)
	}()

	err = fn(ctx)

	return err
}

func (l *Logger) emitFailure(ctx context.Context, msg string, failure capturedFailure) {
	level := log.LevelError
	if l.handleError {
		level = log.LevelWarn
	}

	l.emit(ctx, level, msg, nil, []log.Field{failure.field()})
}
