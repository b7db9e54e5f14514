// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"adboard/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a username is taken at insert time.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrVersionConflict is returned when an update targets a stale version of a record.
	ErrVersionConflict = errors.New("version conflict")
)

// UserRepository is the user directory: lookup by username, existence check and creation.
type UserRepository interface {
	// FindByID retrieves a single user by their primary key.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their login.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the login is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and fills in its generated fields.
	Create(ctx context.Context, user *entity.User) error

	// Update writes profile, password and avatar fields guarded by user.Version.
	// On success user.Version is incremented.
	Update(ctx context.Context, user *entity.User) error
}
