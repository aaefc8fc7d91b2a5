// Package results provides ResultStore implementations for task result
// envelopes: a volatile in-process store suited to tests and single-process
// deployments, and a Redis-backed store (subpackage redis) for processes that
// need results to survive restarts or be shared across instances.
package results

import (
	"sync"
	"time"

	"github.com/vidyasetu/agentcore/core"
)

// InMemoryStore is a volatile ResultStore keeping envelopes in a process-local
// map guarded by an RWMutex. Envelopes are values, so reads hand out copies by
// construction and external mutation of stored state is impossible.
//
// This implementation does not bound its size; eviction happens only through
// Sweep, which the orchestrator's background loop drives periodically. For
// durable or multi-process setups prefer the redis subpackage.
type InMemoryStore struct {
	mu      sync.RWMutex
	results map[string]core.TaskResult
}

// NewInMemoryStore returns an empty in-memory result store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{results: make(map[string]core.TaskResult)}
}

// Put stores (or overwrites) the envelope under its task id.
func (s *InMemoryStore) Put(result core.TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.TaskID] = result
	return nil
}

// Get returns the stored envelope or ErrNotFound.
func (s *InMemoryStore) Get(taskID string) (core.TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[taskID]
	if !ok {
		return core.TaskResult{}, ErrNotFound
	}
	return result, nil
}

// Len reports the number of stored envelopes.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Sweep evicts every envelope older than maxAge, returning the eviction
// count. A maxAge of zero evicts everything. Entries are judged one at a
// time so a single odd entry never blocks eviction of the rest.
func (s *InMemoryStore) Sweep(maxAge time.Duration) (int, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for taskID, result := range s.results {
		if result.Age(now) >= maxAge {
			delete(s.results, taskID)
			evicted++
		}
	}
	return evicted, nil
}
