package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for tests and single-node local
// runs. Semantics mirror the Redis script: fixed window anchored at the
// first increment.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	count   int64
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]*memoryEntry{}, now: time.Now}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.After(e.expires) {
		e = &memoryEntry{expires: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, nil
}
