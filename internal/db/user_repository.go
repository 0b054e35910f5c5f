package db

import (
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateDisplayName(userID uint, displayName string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("display_name", displayName).Error
}

func (repo *UserRepository) UpdateServerURL(userID uint, serverURL string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("server_url", serverURL).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	}).Error
}

// DeleteAccountAndRelatedData removes the user together with every row
// the account owns, in one transaction.
func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&models.SetRecord{},
			&models.DayStatus{},
			&models.WorkoutSession{},
			&models.CreatineSettings{},
			&models.CreatineIntake{},
			&models.SyncEntry{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		var plan models.WorkoutPlan
		if err := tx.Where("user_id = ?", userID).First(&plan).Error; err == nil {
			if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanExercise{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&plan).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
