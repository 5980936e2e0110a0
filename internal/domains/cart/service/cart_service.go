package service

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/cart/model"
	"events-backend/internal/domains/cart/store"
	"events-backend/pkg/cache"
)

type cartService struct {
	cache cache.Cache
}

// NewCartService builds the cart service over the durable key-value storage.
func NewCartService(c cache.Cache) CartService {
	return &cartService{cache: c}
}

// storeFor builds a per-request store bound to the user's cart slot.
// The store is created empty; callers rehydrate before trusting any read.
func (s *cartService) storeFor(userID uuid.UUID) *store.Store {
	return store.New(store.NewRedisStorage(s.cache, userID.String()))
}

func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return state.ToResponse(), nil
}

func (s *cartService) AddLine(ctx context.Context, userID uuid.UUID, req model.AddLineRequest) (*model.CartResponse, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	cart.AddLine(req.ToLineItem())

	if err := cart.Persist(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return state.ToResponse(), nil
}

func (s *cartService) RemoveLine(ctx context.Context, userID uuid.UUID, req model.RemoveLineRequest) (*model.CartResponse, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	cart.RemoveLine(model.LineItem{EventID: req.EventID, OptionsLabel: req.OptionsLabel})

	if err := cart.Persist(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return state.ToResponse(), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req model.UpdateQuantityRequest) (*model.CartResponse, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	cart.UpdateQuantity(req.EventID, req.OptionsLabel, req.Quantity)

	if err := cart.Persist(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return state.ToResponse(), nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return err
	}

	cart.Clear()
	return cart.Persist(ctx)
}

func (s *cartService) ValidateCart(ctx context.Context, userID uuid.UUID) (*model.ValidateResult, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	valid := cart.Validate()

	if err := cart.Persist(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return &model.ValidateResult{Valid: valid, Cart: state.ToResponse()}, nil
}

func (s *cartService) GetSummary(ctx context.Context, userID uuid.UUID) (*model.Summary, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	summary := cart.Summary()
	return &summary, nil
}

func (s *cartService) Snapshot(ctx context.Context, userID uuid.UUID) (*model.CartState, error) {
	cart := s.storeFor(userID)
	if err := cart.Rehydrate(ctx); err != nil {
		return nil, err
	}

	state := cart.State()
	return &state, nil
}
