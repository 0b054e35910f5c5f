package db

import (
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"gorm.io/gorm"
)

type SetRecordRepository struct {
	database *gorm.DB
}

func NewSetRecordRepository(database *gorm.DB) *SetRecordRepository {
	return &SetRecordRepository{database: database}
}

func (repo *SetRecordRepository) ListByUser(userID uint) ([]models.SetRecord, error) {
	records := make([]models.SetRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day_number ASC, exercise_index ASC, set_index ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SetRecordRepository) ListByUserDay(userID uint, dayNumber int) ([]models.SetRecord, error) {
	records := make([]models.SetRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Order("exercise_index ASC, set_index ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SetRecordRepository) FindBySlot(userID uint, dayNumber int, exerciseIndex int, setIndex int) (models.SetRecord, bool, error) {
	record := models.SetRecord{}
	result := repo.database.
		Where("user_id = ? AND day_number = ? AND exercise_index = ? AND set_index = ?",
			userID, dayNumber, exerciseIndex, setIndex).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.SetRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SetRecord{}, false, nil
	}
	return record, true, nil
}

// UpsertSlot overwrites whatever record currently occupies the slot.
func (repo *SetRecordRepository) UpsertSlot(record *models.SetRecord) error {
	existing, found, err := repo.FindBySlot(record.UserID, record.DayNumber, record.ExerciseIndex, record.SetIndex)
	if err != nil {
		return err
	}
	if found {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		return repo.database.Save(record).Error
	}
	return repo.database.Create(record).Error
}

func (repo *SetRecordRepository) DeleteSlot(userID uint, dayNumber int, exerciseIndex int, setIndex int) error {
	return repo.database.
		Where("user_id = ? AND day_number = ? AND exercise_index = ? AND set_index = ?",
			userID, dayNumber, exerciseIndex, setIndex).
		Delete(&models.SetRecord{}).Error
}

func (repo *SetRecordRepository) DeleteByUserDay(userID uint, dayNumber int) error {
	return repo.database.
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Delete(&models.SetRecord{}).Error
}

func (repo *SetRecordRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.SetRecord{}).Error
}

func (repo *SetRecordRepository) CountByUserDay(userID uint, dayNumber int) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SetRecord{}).
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
