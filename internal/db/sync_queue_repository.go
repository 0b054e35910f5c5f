package db

import (
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SyncQueueRepository struct {
	database *gorm.DB
}

func NewSyncQueueRepository(database *gorm.DB) *SyncQueueRepository {
	return &SyncQueueRepository{database: database}
}

func (repo *SyncQueueRepository) Enqueue(userID uint, kind string, payload datatypes.JSON) (models.SyncEntry, error) {
	entry := models.SyncEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Kind:     kind,
		Payload:  payload,
		QueuedAt: time.Now(),
	}
	if err := repo.database.Create(&entry).Error; err != nil {
		return models.SyncEntry{}, err
	}
	return entry, nil
}

func (repo *SyncQueueRepository) ListPending(userID uint) ([]models.SyncEntry, error) {
	entries := make([]models.SyncEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("queued_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *SyncQueueRepository) CountPending(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SyncEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *SyncQueueRepository) MarkFailed(entryID uuid.UUID, attemptError string) error {
	return repo.database.Model(&models.SyncEntry{}).
		Where("id = ?", entryID).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": attemptError,
		}).Error
}

func (repo *SyncQueueRepository) Remove(entryID uuid.UUID) error {
	return repo.database.Delete(&models.SyncEntry{}, "id = ?", entryID).Error
}
