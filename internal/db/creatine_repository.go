package db

import (
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"gorm.io/gorm"
)

type CreatineRepository struct {
	database *gorm.DB
}

func NewCreatineRepository(database *gorm.DB) *CreatineRepository {
	return &CreatineRepository{database: database}
}

func (repo *CreatineRepository) LoadSettings(userID uint) (models.CreatineSettings, bool, error) {
	settings := models.CreatineSettings{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&settings)
	if result.Error != nil {
		return models.CreatineSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CreatineSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *CreatineRepository) SaveSettings(settings *models.CreatineSettings) error {
	existing, found, err := repo.LoadSettings(settings.UserID)
	if err != nil {
		return err
	}
	if found {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return repo.database.Save(settings).Error
	}
	return repo.database.Create(settings).Error
}

func (repo *CreatineRepository) SaveLocation(userID uint, location models.ReminderLocation) error {
	settings, found, err := repo.LoadSettings(userID)
	if err != nil {
		return err
	}
	if !found {
		settings = models.CreatineSettings{
			UserID:           userID,
			ReminderTime:     models.DefaultReminderTime,
			DefaultGrams:     models.DefaultGramsPerDose,
			NotificationType: models.NotificationTypeNotification,
			BatteryPreset:    models.BatteryPresetBalanced,
		}
	}
	settings.ReminderLocation = &location
	return repo.database.Save(&settings).Error
}

func (repo *CreatineRepository) ListEnabledSettings() ([]models.CreatineSettings, error) {
	rows := make([]models.CreatineSettings, 0)
	if err := repo.database.
		Where("time_based_enabled = ? OR location_based_reminder = ?", true, true).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *CreatineRepository) LogIntake(intake *models.CreatineIntake) error {
	return repo.database.Create(intake).Error
}

// IntakeLoggedOn reports whether the user already logged a dose on the
// given calendar day.
func (repo *CreatineRepository) IntakeLoggedOn(userID uint, dayStart time.Time) (bool, error) {
	dayEnd := dayStart.AddDate(0, 0, 1)
	var count int64
	if err := repo.database.Model(&models.CreatineIntake{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *CreatineRepository) ListIntakes(userID uint, from time.Time, to time.Time) ([]models.CreatineIntake, error) {
	intakes := make([]models.CreatineIntake, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}
