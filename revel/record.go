package revel

import (
	"context"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// emit composes one record and hands it to the handler exactly once.
// The handler owns level filtering; nothing is dropped here.
func (l *Logger) emit(ctx context.Context, level log.Level, msg string, binding []log.Field, callFields []log.Field) {
	l.handler.Log(ctx, level, log.SanitizeString(msg), l.compose(ctx, binding, callFields)...)
}

// compose merges the derived binding and per-call fields (record top level)
// with the logger's persistent context and active scope frames (nested under
// the logger-name namespace).
func (l *Logger) compose(ctx context.Context, binding []log.Field, callFields []log.Field) []log.Field {
	fields := make([]log.Field, 0, len(binding)+len(callFields)+1)
	fields = append(fields, log.SanitizeFields(binding)...)
	fields = append(fields, log.SanitizeFields(callFields)...)

	namespace := l.store.Snapshot()

	// Innermost frame wins for a repeated key; outer frames with distinct
	// keys stay visible alongside it.
	seen := make(map[string]struct{})

	for frame := l.scopeChain(ctx); frame != nil; frame = frame.prev {
		if _, dup := seen[frame.key]; dup {
			continue
		}

		seen[frame.key] = struct{}{}
		namespace[frame.key] = frame.fields
	}

	if len(namespace) > 0 {
		fields = append(fields, log.Any(l.name, namespace))
	}

	return fields
}
