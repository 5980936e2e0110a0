package store

import (
	"context"
	"fmt"

	"events-backend/internal/domains/cart/model"
	"events-backend/pkg/cache"
)

// redisStorage persists the cart as JSON under one fixed key in Redis.
// Writes are last-writer-wins: two sessions sharing a slot are not
// transactional against each other.
type redisStorage struct {
	cache cache.Cache
	key   string
}

// NewRedisStorage builds a Storage bound to the user's cart slot.
func NewRedisStorage(c cache.Cache, userID string) Storage {
	return &redisStorage{
		cache: c,
		key:   fmt.Sprintf(model.StorageKeyByUser, userID),
	}
}

func (r *redisStorage) Load(ctx context.Context) (*model.CartState, bool, error) {
	var state model.CartState
	found, err := r.cache.Get(ctx, r.key, &state)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &state, true, nil
}

func (r *redisStorage) Save(ctx context.Context, state *model.CartState) error {
	return r.cache.Set(ctx, r.key, state, model.StorageTTL)
}

func (r *redisStorage) Clear(ctx context.Context) error {
	return r.cache.Delete(ctx, r.key)
}
