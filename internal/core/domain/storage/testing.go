package storage

import (
	"context"
	"sync"
)

type FakeStore struct {
	Values map[string]string
	// SetErrors are returned by consecutive Set calls, one per call.
	SetErrors []error
	GetError  error
	SetCalls  int
	lock      sync.Mutex
}

func NewFakeStore() *FakeStore {
	return &FakeStore{Values: make(map[string]string)}
}

func (s *FakeStore) Get(ctx context.Context, key string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.GetError != nil {
		return "", s.GetError
	}
	value, ok := s.Values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (s *FakeStore) Set(ctx context.Context, key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.set(key, value)
}

// Update consumes SetErrors like Set does.
func (s *FakeStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.GetError != nil {
		return s.GetError
	}
	current, found := s.Values[key]
	value, err := fn(current, found)
	if err != nil {
		return err
	}
	return s.set(key, value)
}

func (s *FakeStore) set(key string, value string) error {
	s.SetCalls++
	if len(s.SetErrors) > 0 {
		err := s.SetErrors[0]
		s.SetErrors = s.SetErrors[1:]
		if err != nil {
			return err
		}
	}
	s.Values[key] = value
	return nil
}
