package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind the identity provider surface. Role is
// the only authorization signal the rest of the system consumes.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
