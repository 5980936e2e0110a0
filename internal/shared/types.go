package shared

import "github.com/google/uuid"

// Role constants issued by the identity provider.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Identity is the authenticated caller as seen by the domain services:
// a user id, an email, and a role flag. Handlers build it from the claims
// the auth middleware put into the request context.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
