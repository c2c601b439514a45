package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists the blob as a single JSON file on disk. Saves go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated blob behind.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) (*FileBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileBackend{path: path}, nil
}

func (f *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	return data, nil
}

func (f *FileBackend) Save(_ context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}

func (f *FileBackend) Delete(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove storage file: %w", err)
	}
	return nil
}

func (f *FileBackend) Close() error {
	return nil
}
