// Package file is the production BlobStore: a single JSON document on disk.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a half-written document behind.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"study-task-tracker/internal/task/repository"
)

type store struct {
	path string
	mu   sync.Mutex
}

// New creates a file-backed blob store at path. The file is created on first
// write; a missing file reads as an empty store.
func New(path string) repository.BlobStore {
	return &store{path: path}
}

func (s *store) GetString(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	raw, ok := doc[key]
	if !ok {
		return "", false, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false, fmt.Errorf("key %q does not hold a string: %w", key, err)
	}
	return v, true, nil
}

func (s *store) SetString(ctx context.Context, key, value string) error {
	return s.set(key, value)
}

func (s *store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, false, err
	}
	raw, ok := doc[key]
	if !ok {
		return false, false, nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, false, fmt.Errorf("key %q does not hold a bool: %w", key, err)
	}
	return v, true, nil
}

func (s *store) SetBool(ctx context.Context, key string, value bool) error {
	return s.set(key, value)
}

func (s *store) set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}
	doc[key] = raw

	return s.write(doc)
}

// read loads the whole document. Callers must hold s.mu.
func (s *store) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	doc := map[string]json.RawMessage{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store file is not a valid JSON document: %w", err)
	}
	return doc, nil
}

// write replaces the whole document atomically. Callers must hold s.mu.
func (s *store) write(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
