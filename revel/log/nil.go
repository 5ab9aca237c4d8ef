package log

import "context"

// NopHandler is a no-op handler implementation.
type NopHandler struct{}

// NewNop creates a no-op handler implementation.
//
//nolint:ireturn
func NewNop() Handler {
	return &NopHandler{}
}

// Log drops all log events.
func (h *NopHandler) Log(_ context.Context, _ Level, _ string, _ ...Field) {}

// Enabled always returns false for NopHandler.
func (h *NopHandler) Enabled(_ Level) bool {
	return false
}

// SetLevel is a no-op.
func (h *NopHandler) SetLevel(_ Level) {}

// Sync is a no-op and always returns nil.
func (h *NopHandler) Sync(_ context.Context) error { return nil }
