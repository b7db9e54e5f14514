package postgres

import (
	"context"
	"time"

	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"
	"adboard/internal/errors"
	"adboard/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adRepository implements the domain.AdRepository interface using GORM.
type adRepository struct {
	db *gorm.DB
}

// NewAdRepository creates an ad repository on top of the given connection or transaction.
func NewAdRepository(db *gorm.DB) repository.AdRepository {
	return &adRepository{db: db}
}

// FindByID retrieves an ad together with its author.
func (repo *adRepository) FindByID(ctx context.Context, id int64) (*entity.Ad, error) {
	var adM model.AdModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		First(&adM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdNotFound
		}

		return nil, errors.Wrap(err, "failed to find ad by id")
	}

	return toAdDomain(&adM), nil
}

// List returns all ads, newest first.
func (repo *adRepository) List(ctx context.Context) ([]*entity.Ad, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list ads")
}

// ListByAuthor returns the ads owned by authorID, newest first.
func (repo *adRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Ad, error) {
	return repo.find(repo.db.WithContext(ctx).Where("author_id = ?", authorID), "failed to list ads by author")
}

func (repo *adRepository) find(tx *gorm.DB, failure string) ([]*entity.Ad, error) {
	var adMs []*model.AdModel
	if err := tx.Preload("Author").Order("id DESC").Find(&adMs).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	ads := make([]*entity.Ad, 0, len(adMs))
	for _, adM := range adMs {
		ads = append(ads, toAdDomain(adM))
	}

	return ads, nil
}

// Create persists a new ad. The author association is never written through this path.
func (repo *adRepository) Create(ctx context.Context, ad *entity.Ad) error {
	adM := fromAdDomain(ad)
	adM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(adM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid ad information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ad")
	}

	ad.ID = adM.ID
	ad.Version = adM.Version
	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

// Update writes the mutable ad columns when the stored version still matches ad.Version.
func (repo *adRepository) Update(ctx context.Context, ad *entity.Ad) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AdModel{}).
		Where("id = ? AND version = ?", ad.ID, ad.Version).
		Updates(map[string]any{
			"title":       ad.Title,
			"description": ad.Description,
			"price":       ad.Price,
			"image_path":  ad.ImagePath,
			"version":     gorm.Expr("version + 1"),
			"updated_at":  now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid ad information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update ad")
	}
	if result.RowsAffected == 0 {
		return missedUpdate(ctx, repo.db, &model.AdModel{}, ad.ID, repository.ErrAdNotFound)
	}

	ad.Version++
	ad.UpdatedAt = now

	return nil
}

// Delete removes the ad row.
func (repo *adRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AdModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("ad still has comments")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ad")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdNotFound
	}

	return nil
}

// toAdDomain converts a GORM AdModel to a domain Ad entity.
func toAdDomain(data *model.AdModel) *entity.Ad {
	if data == nil {
		return nil
	}

	return &entity.Ad{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImagePath:   data.ImagePath,
		AuthorID:    data.AuthorID,
		Author:      toUserDomain(data.Author),
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAdDomain converts a domain Ad entity to a GORM AdModel. The author is left unset.
func fromAdDomain(data *entity.Ad) *model.AdModel {
	if data == nil {
		return nil
	}

	return &model.AdModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		ImagePath:   data.ImagePath,
		AuthorID:    data.AuthorID,
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
