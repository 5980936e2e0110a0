package category

import (
	"context"

	"github.com/google/uuid"
)

// ============================================================
// SERVICE INTERFACE: CategoryService
// ============================================================

type CategoryService interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)

	GetAll(ctx context.Context) ([]Category, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
