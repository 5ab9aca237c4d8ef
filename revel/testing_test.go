package revel

import (
	"context"
	"sync"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// recordedEntry is one record captured by memoryHandler.
type recordedEntry struct {
	Level  log.Level
	Msg    string
	Fields map[string]any
}

// namespace returns the nested context map under name, or nil.
func (e recordedEntry) namespace(name string) map[string]any {
	ns, _ := e.Fields[name].(map[string]any)

	return ns
}

// memoryHandler is a log.Handler that records every emission for assertions.
type memoryHandler struct {
	mu      sync.Mutex
	level   log.Level
	entries []recordedEntry
}

func newMemoryHandler() *memoryHandler {
	return &memoryHandler{level: log.LevelDebug}
}

func (h *memoryHandler) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := recordedEntry{Level: level, Msg: msg, Fields: make(map[string]any, len(fields))}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	h.entries = append(h.entries, entry)
}

func (h *memoryHandler) Enabled(level log.Level) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.level >= level
}

func (h *memoryHandler) SetLevel(level log.Level) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.level = level
}

func (h *memoryHandler) Sync(_ context.Context) error { return nil }

func (h *memoryHandler) Level() log.Level {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.level
}

func (h *memoryHandler) All() []recordedEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]recordedEntry, len(h.entries))
	copy(entries, h.entries)

	return entries
}

func (h *memoryHandler) Last() (recordedEntry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return recordedEntry{}, false
	}

	return h.entries[len(h.entries)-1], true
}
