package postgres

import (
	"context"

	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"

	"gorm.io/gorm"
)

// missedUpdate explains a versioned update that matched no row: either the row
// is gone, reported as missing, or its version moved on.
func missedUpdate(ctx context.Context, db *gorm.DB, row any, id int64, missing error) error {
	var count int64
	if err := db.WithContext(ctx).Model(row).Where("id = ?", id).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check row after update")
	}
	if count == 0 {
		return missing
	}

	return repository.ErrVersionConflict
}
