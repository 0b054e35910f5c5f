package db

import (
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) LoadByUser(userID uint) (models.WorkoutPlan, []models.PlanExercise, bool, error) {
	plan := models.WorkoutPlan{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&plan)
	if result.Error != nil {
		return models.WorkoutPlan{}, nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkoutPlan{}, nil, false, nil
	}

	exercises := make([]models.PlanExercise, 0)
	if err := repo.database.
		Where("plan_id = ?", plan.ID).
		Order("day_number ASC, position ASC").
		Find(&exercises).Error; err != nil {
		return models.WorkoutPlan{}, nil, false, err
	}
	return plan, exercises, true, nil
}

// ReplacePlan swaps the user's plan and exercise list atomically.
func (repo *PlanRepository) ReplacePlan(plan *models.WorkoutPlan, exercises []models.PlanExercise) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var existing models.WorkoutPlan
		result := tx.Where("user_id = ?", plan.UserID).Limit(1).Find(&existing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			plan.ID = existing.ID
			plan.CreatedAt = existing.CreatedAt
			if err := tx.Where("plan_id = ?", existing.ID).Delete(&models.PlanExercise{}).Error; err != nil {
				return err
			}
			if err := tx.Save(plan).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(plan).Error; err != nil {
				return err
			}
		}

		for index := range exercises {
			exercises[index].ID = 0
			exercises[index].PlanID = plan.ID
		}
		if len(exercises) == 0 {
			return nil
		}
		return tx.Create(&exercises).Error
	})
}

func (repo *PlanRepository) ExercisesForDay(userID uint, dayNumber int) ([]models.PlanExercise, error) {
	_, exercises, found, err := repo.LoadByUser(userID)
	if err != nil || !found {
		return nil, err
	}

	dayExercises := make([]models.PlanExercise, 0, len(exercises))
	for _, exercise := range exercises {
		if exercise.DayNumber == dayNumber {
			dayExercises = append(dayExercises, exercise)
		}
	}
	return dayExercises, nil
}

// ExerciseNames returns every distinct exercise name in the plan, in
// plan order. Used as the known-name set for typo matching.
func (repo *PlanRepository) ExerciseNames(userID uint) ([]string, error) {
	_, exercises, found, err := repo.LoadByUser(userID)
	if err != nil || !found {
		return nil, err
	}

	seen := make(map[string]struct{}, len(exercises))
	names := make([]string, 0, len(exercises))
	for _, exercise := range exercises {
		if _, duplicate := seen[exercise.Name]; duplicate {
			continue
		}
		seen[exercise.Name] = struct{}{}
		names = append(names, exercise.Name)
	}
	return names, nil
}
