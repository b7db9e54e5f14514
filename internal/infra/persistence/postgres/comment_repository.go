package postgres

import (
	"context"

	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"
	"adboard/internal/errors"
	"adboard/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a comment repository on top of the given connection or transaction.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a comment together with its author.
func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		First(&commentM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByAd returns the comments of an ad, oldest first.
func (repo *commentRepository) ListByAd(ctx context.Context, adID int64) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("ad_id = ?", adID).
		Order("created_at ASC, id ASC").
		Find(&commentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)
	commentM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAdNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.Version = commentM.Version
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// Update writes the comment text when the stored version still matches comment.Version.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND version = ?", comment.ID, comment.Version).
		Updates(map[string]any{
			"text":    comment.Text,
			"version": gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return missedUpdate(ctx, repo.db, &model.CommentModel{}, comment.ID, repository.ErrCommentNotFound)
	}

	comment.Version++

	return nil
}

// Delete removes a single comment.
func (repo *commentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByAd removes every comment under adID.
func (repo *commentRepository) DeleteByAd(ctx context.Context, adID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("ad_id = ?", adID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comments of ad")
	}

	return result.RowsAffected, nil
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		Text:      data.Text,
		AdID:      data.AdID,
		AuthorID:  data.AuthorID,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel. The author is left unset.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		Text:      data.Text,
		AdID:      data.AdID,
		AuthorID:  data.AuthorID,
		CreatedAt: data.CreatedAt,
		Version:   data.Version,
	}
}
