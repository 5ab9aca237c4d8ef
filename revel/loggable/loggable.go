package loggable

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/miguelm-revel/revel-data-logs-experimental/revel"
	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// Args maps argument names to the values a wrapped call was invoked with.
// The caller supplies the mapping; no reflection is involved.
type Args map[string]any

// Func is a callable that can be wrapped with logging behavior.
type Func func(ctx context.Context, args Args) error

// Loggable wraps fn so every invocation logs an entry record carrying the
// call arguments under args plus a generated call_id.
func Loggable(logger *revel.Logger, name string, fn Func) Func {
	return func(ctx context.Context, args Args) error {
		logger.Info(ctx, fmt.Sprintf("func %s called", name),
			log.String("call_id", uuid.NewString()),
			log.Any("args", map[string]any(args)),
		)

		return fn(ctx, args)
	}
}

// ErrorLogs wraps fn so failures are logged with the failing function's name
// and arguments. When handleError is true the failure is consumed after
// being recorded; otherwise it propagates to the caller.
func ErrorLogs(logger *revel.Logger, name string, handleError bool, fn Func) Func {
	return func(ctx context.Context, args Args) error {
		err := fn(ctx, args)
		if err == nil {
			return nil
		}

		logger.Error(ctx, err.Error(),
			log.String("function_name", name),
			log.Any("args", map[string]any(args)),
		)

		if handleError {
			return nil
		}

		return err
	}
}
