package revel

import (
	"errors"
	"fmt"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

var (
	// ErrMissingName is returned when a logger is constructed without a name.
	ErrMissingName = errors.New("logger name is required")
	// ErrMissingHandler is returned when a logger is constructed without a handler.
	ErrMissingHandler = errors.New("logger handler is required")
)

// capturedFailure is the stable (kind, detail) pair extracted from a failure
// propagating out of a message scope or a wrapped call.
type capturedFailure struct {
	Kind   string
	Detail string
}

// captureError extracts the failure pair from an error. Kind is the dynamic
// error type, matching what operators grep for in production records.
func captureError(err error) capturedFailure {
	return capturedFailure{
		Kind:   fmt.Sprintf("%T", err),
		Detail: err.Error(),
	}
}

// capturePanic extracts the failure pair from a recovered panic value.
func capturePanic(r any) capturedFailure {
	if err, ok := r.(error); ok {
		return captureError(err)
	}

	return capturedFailure{
		Kind:   "panic",
		Detail: fmt.Sprint(r),
	}
}

// field renders the failure as the record's top-level exc field.
func (c capturedFailure) field() log.Field {
	return log.Any("exc", map[string]string{
		"error_type":  c.Kind,
		"error_value": c.Detail,
	})
}

// panicToError converts a recovered panic value into an error for callers of
// scopes that consume failures.
func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", r)
}
