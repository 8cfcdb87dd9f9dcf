package kv

import (
	"context"
	"sync"

	"remindu/internal/core/domain/storage"
)

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	values map[string]string
	lock   sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	current, found := s.values[key]
	value, err := fn(current, found)
	if err != nil {
		return err
	}
	s.values[key] = value
	return nil
}
