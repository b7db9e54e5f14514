// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator that may modify any resource.
	RoleAdmin Role = "ADMIN"
)

// roleAuthorities maps each role to the authority string carried in tokens.
var roleAuthorities = map[Role]string{
	RoleUser:  "user",
	RoleAdmin: "admin",
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	_, ok := roleAuthorities[r]

	return ok
}

// Authority returns the token authority for the role, or an empty string for unknown roles.
func (r Role) Authority() string {
	return roleAuthorities[r]
}

// RoleFromAuthority resolves a token authority back to its Role.
func RoleFromAuthority(authority string) (Role, bool) {
	for role, a := range roleAuthorities {
		if a == authority {
			return role, true
		}
	}

	return "", false
}

// ParseRole converts the wire form of a role, defaulting to RoleUser when empty.
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return RoleUser, true
	}
	role := Role(s)

	return role, role.IsValid()
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
