package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for accounts.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
