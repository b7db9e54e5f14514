package repository

import (
	"context"
	"errors"

	"adboard/internal/domain/entity"
)

// ErrCommentNotFound is returned when no comment matches the lookup.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// FindByID retrieves a comment with its author loaded.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// ListByAd returns the comments of an ad, oldest first.
	ListByAd(ctx context.Context, adID int64) ([]*entity.Comment, error)

	// Create persists a new comment and fills in its generated fields.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update writes the comment text guarded by comment.Version.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a single comment.
	Delete(ctx context.Context, id int64) error

	// DeleteByAd removes every comment of an ad and returns how many were removed.
	DeleteByAd(ctx context.Context, adID int64) (int64, error)
}
