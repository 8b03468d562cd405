package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the actor's role as asserted by the identity provider's token.
type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOrganizer, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries the administrative override.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
