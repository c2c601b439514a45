package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no blob has been persisted yet.
var ErrNotFound = errors.New("storage: blob not found")

// Backend persists the planner database as a single opaque blob under one
// key. Implementations are swappable without changing call sites, which is
// why every method takes a context even when the backing store is local.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Delete(ctx context.Context) error
	Close() error
}
