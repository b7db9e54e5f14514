package entity

import "time"

// Price bounds accepted for an ad.
const (
	MinAdPrice = 0
	MaxAdPrice = 10_000_000
)

// Ad is a classified listing owned by its author.
type Ad struct {
	ID          int64
	Title       string
	Description string
	Price       int
	ImagePath   *string
	AuthorID    int64 // Immutable after creation.
	Author      *User // Loaded alongside the ad when the store can join it.
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasImage reports whether an image is stored for the ad.
func (a *Ad) HasImage() bool {
	return a != nil && a.ImagePath != nil && *a.ImagePath != ""
}
