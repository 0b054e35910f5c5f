package db

import (
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.WorkoutSession) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) Save(session *models.WorkoutSession) error {
	return repo.database.Save(session).Error
}

func (repo *SessionRepository) FindByID(userID uint, sessionID uuid.UUID) (models.WorkoutSession, bool, error) {
	session := models.WorkoutSession{}
	result := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.WorkoutSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkoutSession{}, false, nil
	}
	return session, true, nil
}

// FindActive returns the newest session without an end timestamp.
func (repo *SessionRepository) FindActive(userID uint) (models.WorkoutSession, bool, error) {
	session := models.WorkoutSession{}
	result := repo.database.
		Where("user_id = ? AND ended_at IS NULL", userID).
		Order("started_at DESC").
		Limit(1).
		Find(&session)
	if result.Error != nil {
		return models.WorkoutSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkoutSession{}, false, nil
	}
	return session, true, nil
}

func (repo *SessionRepository) ListByUser(userID uint) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SessionRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.WorkoutSession{}).Error
}
