package models

// Roles known to the service.
const (
	RoleCardOwner = "CARD-OWNER"
	RoleNonOwner  = "NON-OWNER"
)

// Principal is an authenticated identity. PasswordHash holds a bcrypt hash
// and is never serialized.
type Principal struct {
	Username string `json:"username"`

	PasswordHash string `json:"-"`

	Role string `json:"role"`
}

// HasRole reports whether the principal holds role.
func (p Principal) HasRole(role string) bool {
	return p.Role == role
}
