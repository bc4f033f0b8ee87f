// Package identity carries the caller identity decoded from a verified
// bearer token. It is passed explicitly into every service call instead
// of being read from ambient request state.
package identity

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fitlink.app/backend/internal/entity"
)

// Identity is the {subject, email, role} triple for one request.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// IsAdmin reports whether the caller bypasses ownership checks.
func (i Identity) IsAdmin() bool {
	return i.Role == entity.RoleAdmin
}

// Claims is the JWT payload issued at login/register.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}
