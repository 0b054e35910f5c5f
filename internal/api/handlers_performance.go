package api

import (
	"log"
	"strings"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/matching"
	"github.com/gofiber/fiber/v2"
)

// GetPerformance returns the last/best summary for one exercise, or a
// null summary when no eligible history exists. Load failures degrade
// to "no history" rather than erroring the screen.
func (handler *Handler) GetPerformance(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	exercise := strings.TrimSpace(c.Query("exercise"))
	if exercise == "" {
		return apiError(c, fiber.StatusBadRequest, "exercise name is required")
	}

	summary, err := handler.performance.SummaryForExercise(user.ID, exercise, time.Now(), handler.location)
	if err != nil {
		log.Printf("performance: summary for user %d exercise %q failed: %v", user.ID, exercise, err)
		summary = nil
	}

	return c.JSON(fiber.Map{
		"exercise": exercise,
		"summary":  summary,
	})
}

// MatchExercise powers the typo-correction suggestions in the exercise
// editor.
func (handler *Handler) MatchExercise(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	knownNames, err := handler.repos.Plans.ExerciseNames(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load exercises")
	}

	return c.JSON(matching.MatchByTypo(name, knownNames))
}
