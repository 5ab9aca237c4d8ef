package revel

import "sync"

// ContextStore owns one logger's persistent key/value fields.
//
// All operations are total: Set overwrites, Remove tolerates absent keys,
// and Snapshot returns an isolated copy that later mutations cannot touch.
type ContextStore struct {
	mu     sync.RWMutex
	fields map[string]any
}

// NewContextStore creates an empty store.
func NewContextStore() *ContextStore {
	return &ContextStore{fields: make(map[string]any)}
}

// Set inserts or overwrites the value at key; last write wins.
func (s *ContextStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields[key] = value
}

// Remove deletes key from the store; no-op if absent.
func (s *ContextStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.fields, key)
}

// Snapshot returns a copy of the current mapping, safe to read while
// concurrent writers keep mutating the store.
func (s *ContextStore) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]any, len(s.fields))
	for k, v := range s.fields {
		snapshot[k] = v
	}

	return snapshot
}

// Len returns the number of persistent fields.
func (s *ContextStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.fields)
}
