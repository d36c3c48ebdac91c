package sqlite

import (
	"context"

	"coffissimo/internal/domain/repository"
	"coffissimo/internal/errors"
	"coffissimo/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stateRepository implements the repository.StateRepository interface.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository is the constructor for stateRepository.
func NewStateRepository(db *gorm.DB) repository.StateRepository {
	return &stateRepository{
		db: db,
	}
}

// Load returns the payload stored under key.
func (repo *stateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var recordM model.StoreRecordModel

	if err := repo.db.WithContext(ctx).
		Where("record_key = ?", key).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStateNotFound
		}

		return nil, errors.Wrapf(err, "failed to load record %s", key)
	}

	return []byte(recordM.Payload), nil
}

// Save upserts the payload stored under key.
func (repo *stateRepository) Save(ctx context.Context, key string, payload []byte) error {
	recordM := &model.StoreRecordModel{
		Key:     key,
		Payload: string(payload),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(recordM).Error; err != nil {
		return errors.Wrapf(err, "failed to save record %s", key)
	}

	return nil
}

// Delete removes the record stored under key.
func (repo *stateRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("record_key = ?", key).
		Delete(&model.StoreRecordModel{}).Error; err != nil {
		return errors.Wrapf(err, "failed to delete record %s", key)
	}

	return nil
}
