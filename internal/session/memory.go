// internal/session/memory.go
package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when Redis is not configured.
// Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, conversationID string) (*State, error) {
	s.mu.RLock()
	entry, ok := s.data[conversationID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.data, conversationID)
		s.mu.Unlock()
		return nil, nil
	}
	state := entry.state
	state.Slots = entry.state.Slots.Clone()
	return &state, nil
}

func (s *MemoryStore) Put(_ context.Context, conversationID string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *state
	stored.UpdatedAt = time.Now().UTC()
	stored.Slots = state.Slots.Clone()
	s.data[conversationID] = memoryEntry{
		state:     stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	delete(s.data, conversationID)
	s.mu.Unlock()
	return nil
}
