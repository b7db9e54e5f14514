// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "adboard/internal/delivery/context"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/policy"
	"adboard/internal/domain/repository"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/usecase"
)

// currentUser resolves the request principal into the stored account.
// An empty principal or one whose account no longer exists is unauthenticated.
func currentUser(ctx context.Context, users repository.UserRepository, principal entity.Principal) (*entity.User, error) {
	if principal.IsZero() {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := users.FindByUsername(ctx, principal.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "principal has no account")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve current user")
	}

	return user, nil
}

// findAd loads an ad and maps a missing row to ErrAdNotFound.
func findAd(ctx context.Context, ads repository.AdRepository, adID int64) (*entity.Ad, error) {
	ad, err := ads.FindByID(ctx, adID)
	if errors.Is(err, repository.ErrAdNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrAdNotFound, "ad %d", adID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ad")
	}

	return ad, nil
}

// loadOwnedAd loads the ad and checks that actor may mutate it.
func loadOwnedAd(ctx context.Context, ads repository.AdRepository, actor *entity.User, adID int64) (*entity.Ad, error) {
	ad, err := findAd(ctx, ads, adID)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, ad.AuthorID, policy.RequireOwnerOrAdmin); err != nil {
		return nil, err
	}

	return ad, nil
}

// loadOwnedComment loads the comment addressed under adID and checks that actor may mutate it.
// A comment that exists under another ad is reported as missing.
func loadOwnedComment(ctx context.Context, comments repository.CommentRepository, actor *entity.User, adID, commentID int64) (*entity.Comment, error) {
	comment, err := comments.FindByID(ctx, commentID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrCommentNotFound, "comment %d", commentID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comment")
	}

	if !comment.BelongsTo(adID) {
		return nil, errors.Wrapf(domainerrors.ErrCommentNotFound, "comment %d is not under ad %d", commentID, adID)
	}

	if err := policy.Authorize(actor, comment.AuthorID, policy.RequireOwnerOrAdmin); err != nil {
		return nil, err
	}

	return comment, nil
}

// updateFailure maps a failed versioned update onto the domain taxonomy.
func updateFailure(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		return errors.Wrapf(domainerrors.ErrConflict, "%s was modified concurrently", what)
	case errors.Is(err, repository.ErrAdNotFound):
		return errors.Wrapf(domainerrors.ErrAdNotFound, "%s was deleted", what)
	case errors.Is(err, repository.ErrCommentNotFound):
		return errors.Wrapf(domainerrors.ErrCommentNotFound, "%s was deleted", what)
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrapf(domainerrors.ErrUserNotFound, "%s was deleted", what)
	}

	return errors.Wrapf(err, "failed to update %s", what)
}

// publishEvent sends a lifecycle event after a committed change. Failures are only logged.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.AdEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.PublishAdEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("type", event.Type),
			slog.Int64("adID", event.AdID),
			slog.Any("error", err),
		)
	}
}

// discardImage removes a stored image on a best-effort basis.
func discardImage(ctx context.Context, images service.ImageStorage, logger *slog.Logger, path string) {
	if path == "" {
		return
	}

	if err := images.Delete(ctx, path); err != nil {
		logger.Warn("Failed to delete image", slog.String("path", path), slog.Any("error", err))
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// --- Output mappers ---

func adImageURL(ad *entity.Ad) string {
	if !ad.HasImage() {
		return ""
	}

	return "/ads/" + strconv.FormatInt(ad.ID, 10) + "/image"
}

func userImageURL(user *entity.User) string {
	if !user.HasImage() {
		return ""
	}

	return "/users/" + user.Username + "/image"
}

func toAdOutput(ad *entity.Ad) *usecase.AdOutput {
	return &usecase.AdOutput{
		Author: ad.AuthorID,
		Image:  adImageURL(ad),
		PK:     ad.ID,
		Price:  ad.Price,
		Title:  ad.Title,
	}
}

func toAdsOutput(ads []*entity.Ad) *usecase.AdsOutput {
	results := make([]*usecase.AdOutput, 0, len(ads))
	for _, ad := range ads {
		results = append(results, toAdOutput(ad))
	}

	return &usecase.AdsOutput{Count: len(results), Results: results}
}

func toExtendedAdOutput(ad *entity.Ad) *usecase.ExtendedAdOutput {
	out := &usecase.ExtendedAdOutput{
		PK:          ad.ID,
		Description: ad.Description,
		Image:       adImageURL(ad),
		Price:       ad.Price,
		Title:       ad.Title,
	}
	if ad.Author != nil {
		out.AuthorFirstName = ad.Author.FirstName
		out.AuthorLastName = ad.Author.LastName
		out.Email = ad.Author.Username
		out.Phone = ad.Author.Phone
	}

	return out
}

func toCommentOutput(comment *entity.Comment) *usecase.CommentOutput {
	out := &usecase.CommentOutput{
		Author:    comment.AuthorID,
		CreatedAt: comment.CreatedAt.UnixMilli(),
		PK:        comment.ID,
		Text:      comment.Text,
	}
	if comment.Author != nil {
		out.AuthorFirstName = comment.Author.FirstName
		out.AuthorImage = userImageURL(comment.Author)
	}

	return out
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		ID:        user.ID,
		Email:     user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role.String(),
		Image:     userImageURL(user),
	}
}
