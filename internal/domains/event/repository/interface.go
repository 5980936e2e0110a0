package repository

import (
	"context"

	"github.com/google/uuid"

	"events-backend/internal/domains/event/model"
)

// EventRepository is the persistence boundary for events.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)

	// ListByCategory returns the events for one category slug.
	ListByCategory(ctx context.Context, catSlug string) ([]model.Event, error)

	// ListFeatured returns the events shown when no category is selected.
	ListFeatured(ctx context.Context) ([]model.Event, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
