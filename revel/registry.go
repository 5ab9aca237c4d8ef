package revel

import (
	"sync"

	"github.com/miguelm-revel/revel-data-logs-experimental/revel/log"
)

// registry holds every live Logger in the process. Entry lifecycle is
// explicit: New registers, Close deregisters. Nothing here relies on
// garbage collection.
var registry = &loggerRegistry{loggers: make(map[*Logger]struct{})}

type loggerRegistry struct {
	mu      sync.Mutex
	loggers map[*Logger]struct{}
}

func (r *loggerRegistry) register(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loggers[l] = struct{}{}
}

func (r *loggerRegistry) deregister(l *Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.loggers, l)
}

// snapshot returns the registered loggers at this instant, so iteration
// survives concurrent register/deregister calls.
func (r *loggerRegistry) snapshot() []*Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	loggers := make([]*Logger, 0, len(r.loggers))
	for l := range r.loggers {
		loggers = append(loggers, l)
	}

	return loggers
}

func (r *loggerRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.loggers)
}

// SetLevelGlobal applies level to every logger registered at the moment of
// the call. Loggers constructed afterwards keep their own configured level.
func SetLevelGlobal(level log.Level) {
	for _, l := range registry.snapshot() {
		l.SetLevel(level)
	}
}
