package store

import (
	"context"
	"sync"

	"github.com/idilsaglam/wardrobe/internal/errs"
)

// MemBlob keeps blobs in memory. Put can be made to fail through Err.
type MemBlob struct {
	mu   sync.Mutex
	data map[string][]byte
	Err  error
}

func NewMemBlob() *MemBlob { return &MemBlob{data: map[string][]byte{}} }

func (m *MemBlob) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return nil, errs.ErrNoBlob
	}
	return append([]byte(nil), b...), nil
}

func (m *MemBlob) Put(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}
