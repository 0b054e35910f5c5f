package api

import (
	"strconv"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func parseIntParam(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}

// parseDayParam accepts the positive plan-day number from the route.
func parseDayParam(c *fiber.Ctx) (int, error) {
	day, err := strconv.Atoi(c.Params("day"))
	if err != nil {
		return 0, err
	}
	if day < 1 {
		return 0, strconv.ErrRange
	}
	return day, nil
}
