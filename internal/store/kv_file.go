package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all keys in a single JSON object on disk. The whole
// document is loaded at construction and rewritten on every change.
type FileStore struct {
	path string

	mu    sync.RWMutex
	items map[string]string
}

// NewFileStore opens the document at path, creating nothing until the first
// write. A document that is not a JSON object of strings yields a
// [*CorruptStoreError].
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:  path,
		items: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.items)
	next[key] = value
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return nil
	}

	next := maps.Clone(s.items)
	delete(next, key)
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read store file: %w", ErrStorageUnavailable, err)
	}

	if len(data) == 0 {
		return nil
	}

	var items map[string]string
	if err = json.Unmarshal(data, &items); err != nil {
		return &CorruptStoreError{Key: s.path, Err: err}
	}
	if items != nil {
		s.items = items
	}

	return nil
}

// persist writes items to a temporary file next to the document and renames
// it over the original.
func (s *FileStore) persist(items map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create store dir: %w", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write store file: %w", ErrStorageUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close store file: %w", ErrStorageUnavailable, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: chmod store file: %w", ErrStorageUnavailable, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace store file: %w", ErrStorageUnavailable, err)
	}

	return nil
}
