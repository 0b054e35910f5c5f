package api

import (
	"strings"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	plan, exercises, found, err := handler.repos.Plans.LoadByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plan")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no plan configured")
	}

	return c.JSON(fiber.Map{
		"plan":      plan,
		"exercises": exercises,
	})
}

func (handler *Handler) PutPlan(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := planPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "plan name is required")
	}
	weekCount := payload.WeekCount
	if weekCount < 1 {
		weekCount = 1
	}

	exercises := make([]models.PlanExercise, 0, len(payload.Exercises))
	for _, exercise := range payload.Exercises {
		exerciseName := strings.TrimSpace(exercise.Name)
		if exerciseName == "" {
			return apiError(c, fiber.StatusBadRequest, "exercise name is required")
		}
		if exercise.DayNumber < 1 || exercise.Position < 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid exercise slot")
		}
		exercises = append(exercises, models.PlanExercise{
			DayNumber:   exercise.DayNumber,
			Position:    exercise.Position,
			Name:        exerciseName,
			MuscleGroup: strings.TrimSpace(exercise.MuscleGroup),
			TargetSets:  exercise.TargetSets,
			TargetReps:  exercise.TargetReps,
		})
	}

	plan := models.WorkoutPlan{
		UserID:    user.ID,
		Name:      name,
		WeekCount: weekCount,
	}
	if err := handler.repos.Plans.ReplacePlan(&plan, exercises); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save plan")
	}

	return c.JSON(fiber.Map{
		"plan":      plan,
		"exercises": exercises,
	})
}

func (handler *Handler) GetPlanDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	exercises, err := handler.repos.Plans.ExercisesForDay(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load plan day")
	}
	return c.JSON(fiber.Map{
		"day":       day,
		"exercises": exercises,
	})
}
