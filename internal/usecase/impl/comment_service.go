package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adboard/internal/delivery/context"
	"adboard/internal/domain/constants"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/usecase"

	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	adRepo      repository.AdRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	AdRepo      repository.AdRepository
	CommentRepo repository.CommentRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		adRepo:      params.AdRepo,
		commentRepo: params.CommentRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns the comments of an existing ad, oldest first.
func (srv *commentService) ListComments(ctx context.Context, adID int64) (*usecase.CommentsOutput, error) {
	if _, err := findAd(ctx, srv.adRepo, adID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByAd(ctx, adID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	results := make([]*usecase.CommentOutput, 0, len(comments))
	for _, comment := range comments {
		if !comment.BelongsTo(adID) {
			srv.log(ctx).Error("Comment listed under a foreign ad", slog.Int64("commentID", comment.ID), slog.Int64("adID", adID), slog.Int64("commentAdID", comment.AdID))

			return nil, errors.Wrapf(domainerrors.ErrInternalError, "comment %d listed under ad %d", comment.ID, adID)
		}
		results = append(results, toCommentOutput(comment))
	}

	return &usecase.CommentsOutput{Count: len(results), Results: results}, nil
}

// AddComment posts a comment by the caller under an existing ad.
func (srv *commentService) AddComment(ctx context.Context, principal entity.Principal, adID int64, input *usecase.CommentInput) (*usecase.CommentOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	if _, err := findAd(ctx, srv.adRepo, adID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Text:      input.Text,
		AdID:      adID,
		AuthorID:  user.ID,
		Author:    user,
		CreatedAt: srv.now().UTC(),
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:      constants.EventCommentCreated,
		AdID:      adID,
		CommentID: comment.ID,
		ActorID:   user.ID,
	})

	return toCommentOutput(comment), nil
}

// UpdateComment replaces the text of a comment the caller may modify. CreatedAt is preserved.
func (srv *commentService) UpdateComment(ctx context.Context, principal entity.Principal, adID, commentID int64, input *usecase.CommentInput) (*usecase.CommentOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	comment, err := loadOwnedComment(ctx, srv.commentRepo, user, adID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Text = input.Text
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, updateFailure(err, "comment")
	}

	return toCommentOutput(comment), nil
}

// DeleteComment removes a comment the caller may modify.
func (srv *commentService) DeleteComment(ctx context.Context, principal entity.Principal, adID, commentID int64) error {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	comment, err := loadOwnedComment(ctx, srv.commentRepo, user, adID, commentID)
	if err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Int64("commentID", comment.ID), slog.Int64("actorID", user.ID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:      constants.EventCommentDeleted,
		AdID:      adID,
		CommentID: comment.ID,
		ActorID:   user.ID,
	})

	return nil
}
