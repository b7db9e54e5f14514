package repository

import (
	"context"
	"errors"

	"adboard/internal/domain/entity"
)

// ErrAdNotFound is returned when no ad matches the lookup.
var ErrAdNotFound = errors.New("ad not found")

// AdRepository defines persistence operations for ads.
type AdRepository interface {
	// FindByID retrieves an ad with its author loaded.
	FindByID(ctx context.Context, id int64) (*entity.Ad, error)

	// List returns all ads, newest first.
	List(ctx context.Context) ([]*entity.Ad, error)

	// ListByAuthor returns the ads owned by the given user, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Ad, error)

	// Create persists a new ad and fills in its generated fields.
	Create(ctx context.Context, ad *entity.Ad) error

	// Update writes title, description, price and image path guarded by ad.Version.
	Update(ctx context.Context, ad *entity.Ad) error

	// Delete removes the ad row. Comments must be removed first.
	Delete(ctx context.Context, id int64) error
}
