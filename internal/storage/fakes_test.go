package storage

import (
	"context"
	"errors"
	"sync"
)

// memoryBackend is an in-memory Backend for tests.
type memoryBackend struct {
	mu      sync.Mutex
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryBackend) Name() string { return "memory" }

func (m *memoryBackend) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *memoryBackend) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memoryBackend) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func (m *memoryBackend) snapshot() ([]byte, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.saves
}

type observation struct {
	op      string
	backend string
	failed  bool
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (r *recordingObserver) ObserveSnapshot(op, backend string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observation{op: op, backend: backend, failed: err != nil})
}

var errBoom = errors.New("boom")
