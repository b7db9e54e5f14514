package usecase

import (
	"context"

	"adboard/internal/domain/entity"
)

// CommentInput defines the text of a new or edited comment.
type CommentInput struct {
	Text string `json:"text" validate:"required,min=8,max=64"`
}

// CommentOutput is the public representation of a comment. CreatedAt is in epoch milliseconds.
type CommentOutput struct {
	Author          int64  `json:"author"`
	AuthorImage     string `json:"authorImage"`
	AuthorFirstName string `json:"authorFirstName"`
	CreatedAt       int64  `json:"createdAt"`
	PK              int64  `json:"pk"`
	Text            string `json:"text"`
}

// CommentsOutput is a counted list of comments.
type CommentsOutput struct {
	Count   int              `json:"count"`
	Results []*CommentOutput `json:"results"`
}

// CommentUsecase defines the comment operations. Every comment is addressed under its parent ad.
type CommentUsecase interface {
	ListComments(ctx context.Context, adID int64) (*CommentsOutput, error)
	AddComment(ctx context.Context, principal entity.Principal, adID int64, input *CommentInput) (*CommentOutput, error)
	UpdateComment(ctx context.Context, principal entity.Principal, adID, commentID int64, input *CommentInput) (*CommentOutput, error)
	DeleteComment(ctx context.Context, principal entity.Principal, adID, commentID int64) error
}
