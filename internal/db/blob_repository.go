package db

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob is one persisted collection: a JSON array of records serialized
// as a single value under its kind's namespace key.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

type BlobRepository struct {
	database *gorm.DB
}

func NewBlobRepository(database *gorm.DB) *BlobRepository {
	return &BlobRepository{database: database}
}

// Get returns the stored value for key and whether it exists.
func (repo *BlobRepository) Get(key string) (string, bool, error) {
	blob := Blob{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&blob)
	if result.Error != nil {
		return "", false, result.Error
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return blob.Value, true, nil
}

// Set writes the full value for key, replacing any previous value.
// Last write wins; there is no cross-process coordination.
func (repo *BlobRepository) Set(key string, value string) error {
	blob := Blob{Key: key, Value: value, UpdatedAt: time.Now()}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

// Delete removes the value for key; absent keys are a no-op.
func (repo *BlobRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&Blob{}).Error
}
