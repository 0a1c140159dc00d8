// Package memory is a map-backed BlobStore for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"study-task-tracker/internal/task/repository"
)

type store struct {
	mu      sync.Mutex
	strings map[string]string
	bools   map[string]bool
}

// New creates an empty in-memory blob store.
func New() repository.BlobStore {
	return &store{
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

func (s *store) GetString(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.strings[key]
	return v, ok, nil
}

func (s *store) SetString(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings[key] = value
	return nil
}

func (s *store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.bools[key]
	return v, ok, nil
}

func (s *store) SetBool(ctx context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools[key] = value
	return nil
}
