package service

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/event/model"
)

// EventService exposes event reference data. Listing without a category
// returns the featured set, matching the storefront's landing page.
type EventService interface {
	List(ctx context.Context, categorySlug string) ([]model.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
