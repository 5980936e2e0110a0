package user

import (
	"context"

	"github.com/google/uuid"
)

// Service issues identities: register, login, and profile lookup. The rest
// of the system treats it as an opaque collaborator producing a user + role.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*User, error)
}
