package category

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================
// ENTITY: Category
// ============================================================

// Category groups events on the storefront. Consumed read-only by the
// booking flow; only admins write it.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}
