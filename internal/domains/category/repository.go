package category

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// REPOSITORY INTERFACE: CategoryRepository
// ============================================================

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error

	GetBySlug(ctx context.Context, slug string) (*Category, error)

	GetAll(ctx context.Context) ([]Category, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
