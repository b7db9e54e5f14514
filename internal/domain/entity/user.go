// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the account that owns ads and comments. Username doubles as the login.
type User struct {
	ID           int64     // Primary key assigned by the store.
	Username     string    // Unique login, an e-mail address.
	PasswordHash string    // bcrypt digest; never leaves the service layer.
	FirstName    string    // Given name shown on ads and comments.
	LastName     string    // Family name shown on extended ads.
	Phone        string    // Contact phone, see ValidatePhone.
	Role         Role      // USER or ADMIN.
	ImagePath    *string   // Avatar path inside the image store, nil when unset.
	Version      int64     // Optimistic concurrency token.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last profile change.
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// HasImage reports whether an avatar is stored for the user.
func (u *User) HasImage() bool {
	return u != nil && u.ImagePath != nil && *u.ImagePath != ""
}
