package service

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/cart/model"
)

// CartService rehydrates the caller's cart store before every operation and
// persists it after every mutation.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*model.CartResponse, error)
	AddLine(ctx context.Context, userID uuid.UUID, req model.AddLineRequest) (*model.CartResponse, error)
	RemoveLine(ctx context.Context, userID uuid.UUID, req model.RemoveLineRequest) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req model.UpdateQuantityRequest) (*model.CartResponse, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
	ValidateCart(ctx context.Context, userID uuid.UUID) (*model.ValidateResult, error)
	GetSummary(ctx context.Context, userID uuid.UUID) (*model.Summary, error)

	// Snapshot returns the rehydrated cart state for checkout.
	Snapshot(ctx context.Context, userID uuid.UUID) (*model.CartState, error)
}
