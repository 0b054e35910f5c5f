package db

import (
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"gorm.io/gorm"
)

type DayStatusRepository struct {
	database *gorm.DB
}

func NewDayStatusRepository(database *gorm.DB) *DayStatusRepository {
	return &DayStatusRepository{database: database}
}

func (repo *DayStatusRepository) FindByUserDay(userID uint, dayNumber int) (models.DayStatus, bool, error) {
	status := models.DayStatus{}
	result := repo.database.
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Limit(1).
		Find(&status)
	if result.Error != nil {
		return models.DayStatus{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayStatus{}, false, nil
	}
	return status, true, nil
}

func (repo *DayStatusRepository) ListLockedByUser(userID uint) ([]models.DayStatus, error) {
	statuses := make([]models.DayStatus, 0)
	if err := repo.database.
		Where("user_id = ? AND locked = ?", userID, true).
		Order("day_number ASC").
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (repo *DayStatusRepository) Lock(userID uint, dayNumber int, source string, lockedAt time.Time) error {
	status, found, err := repo.FindByUserDay(userID, dayNumber)
	if err != nil {
		return err
	}
	if !found {
		status = models.DayStatus{UserID: userID, DayNumber: dayNumber}
	}
	status.Locked = true
	status.LockSource = source
	status.UnlockedOverride = false
	status.LockedAt = &lockedAt
	return repo.database.Save(&status).Error
}

// Unlock clears the lock and records an override so a completed day can
// be edited again.
func (repo *DayStatusRepository) Unlock(userID uint, dayNumber int) error {
	status, found, err := repo.FindByUserDay(userID, dayNumber)
	if err != nil {
		return err
	}
	if !found {
		status = models.DayStatus{UserID: userID, DayNumber: dayNumber}
	}
	status.Locked = false
	status.LockSource = ""
	status.UnlockedOverride = true
	status.LockedAt = nil
	return repo.database.Save(&status).Error
}

func (repo *DayStatusRepository) UnlockAll(userID uint) error {
	return repo.database.Model(&models.DayStatus{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"locked":            false,
			"lock_source":       "",
			"unlocked_override": true,
			"locked_at":         nil,
		}).Error
}
