package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps the blob in process memory. Used by tests and as the
// default backend for the demo CLI.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.set {
		return nil, ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryBackend) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	m.set = false
	return nil
}

func (m *MemoryBackend) Close() error {
	return nil
}
