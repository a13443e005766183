package enums

import "fmt"

// Role represents an account-level permissions role.
type Role string

const (
	RoleUser   Role = "user"
	RoleDealer Role = "dealer"
	RoleAdmin  Role = "admin"
)

var validRoles = []Role{RoleUser, RoleDealer, RoleAdmin}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsReviewer reports whether the role may approve listings and manage orders.
func (r Role) IsReviewer() bool {
	return r == RoleDealer || r == RoleAdmin
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
