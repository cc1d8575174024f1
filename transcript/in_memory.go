package transcript

import (
	"fmt"
	"sync"

	"github.com/hupe1980/roundtable/chat"
	"github.com/hupe1980/roundtable/core"
)

// InMemoryStore is a volatile archive of terminal run results kept in a
// process local map. It is safe for concurrent access and best suited for
// tests or ephemeral demo setups. Each stored and returned result is cloned
// to prevent external mutation of internal state.
type InMemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*chat.RunResult
}

// NewInMemoryStore constructs an empty in-memory transcript store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{runs: make(map[string]*chat.RunResult)}
}

// Archive stores a clone of the terminal run result, implementing
// chat.Archiver.
func (s *InMemoryStore) Archive(res *chat.RunResult) error {
	if res == nil || res.RunID == "" {
		return fmt.Errorf("cannot archive run result without run id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[res.RunID] = cloneResult(res)
	return nil
}

// Get returns a clone of an archived run result by id.
func (s *InMemoryStore) Get(runID string) (*chat.RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.runs[runID]
	if !ok {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	return cloneResult(res), nil
}

// List returns the ids of all archived runs.
func (s *InMemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	return ids
}

// Delete removes an archived run. Deleting an unknown id is a no-op.
func (s *InMemoryStore) Delete(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
}

// Len returns the number of archived runs.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

func cloneResult(res *chat.RunResult) *chat.RunResult {
	cp := *res
	cp.Log = append([]core.Message(nil), res.Log...)
	return &cp
}
