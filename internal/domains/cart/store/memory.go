package store

import (
	"context"
	"encoding/json"
	"sync"

	"events-backend/internal/domains/cart/model"
)

// MemoryStorage is an in-memory Storage for tests and local development.
// It round-trips through JSON so it exercises the same serialization path
// as the Redis adapter.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) (*model.CartState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, false, nil
	}

	var state model.CartState
	if err := json.Unmarshal(m.data, &state); err != nil {
		return nil, false, err
	}
	return &state, true, nil
}

func (m *MemoryStorage) Save(ctx context.Context, state *model.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
	return nil
}
