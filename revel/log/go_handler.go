package log

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
)

// GoHandler is the Go built-in (log) implementation of the Handler interface.
// It is the development fallback when no zap backend is wired.
//
// All string arguments are sanitized to prevent log injection (CWE-117).
type GoHandler struct {
	level atomic.Uint32
}

// NewGoHandler creates a stdlib-log backed handler at the given level.
func NewGoHandler(level Level) *GoHandler {
	h := &GoHandler{}
	h.level.Store(uint32(level))

	return h
}

// Enabled checks if the given level is enabled.
func (h *GoHandler) Enabled(level Level) bool {
	if h == nil {
		return false
	}

	return Level(h.level.Load()) >= level
}

// SetLevel changes the handler's verbosity ceiling at runtime.
func (h *GoHandler) SetLevel(level Level) {
	if h == nil {
		return
	}

	h.level.Store(uint32(level))
}

// Log implements the Handler interface on top of the standard log package.
func (h *GoHandler) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !h.Enabled(level) {
		return
	}

	log.Print(h.hydrateWithLevel(level, msg, fields))
}

// Sync implements the Handler interface; the standard log package writes
// unbuffered, so there is nothing to flush.
func (h *GoHandler) Sync(_ context.Context) error { return nil }

func (h *GoHandler) hydrateWithLevel(level Level, msg string, fields []Field) string {
	messageParts := make([]string, 0, 3)
	messageParts = append(messageParts, fmt.Sprintf("[%s]", strings.ToUpper(level.String())))

	if hydrated := hydrateFields(SanitizeFields(fields)); hydrated != "" {
		messageParts = append(messageParts, hydrated)
	}

	messageParts = append(messageParts, SanitizeString(msg))

	return strings.Join(messageParts, " ")
}

func hydrateFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
