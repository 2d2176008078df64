package repositories

import (
	"context"
	"slices"
	"sync"
)

// MemorySlotStore keeps slots in a map for the lifetime of the process.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStore creates an empty store.
func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *MemorySlotStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

// Set stores a copy of value under key.
func (s *MemorySlotStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = slices.Clone(value)
	return nil
}

// Delete removes key.
func (s *MemorySlotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}

// Close is a no-op.
func (s *MemorySlotStore) Close() error { return nil }
