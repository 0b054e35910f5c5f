package api

import (
	"errors"

	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetServerURL(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	serverURL, err := handler.settings.ServerURL(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load server url")
	}
	return c.JSON(fiber.Map{"server_url": serverURL})
}

func (handler *Handler) PutServerURL(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := serverURLPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	normalized, err := handler.settings.UpdateServerURL(user.ID, payload.ServerURL)
	if err != nil {
		if errors.Is(err, services.ErrServerURLEmpty) || errors.Is(err, services.ErrServerURLInvalid) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save server url")
	}
	return c.JSON(fiber.Map{"server_url": normalized})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := profilePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.settings.UpdateDisplayName(user.ID, payload.DisplayName); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return c.JSON(fiber.Map{"ok": true})
}

// DeleteAccount permanently removes the account together with every
// row it owns. Scheduled reminders for the user are dropped as well.
func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	handler.scheduler.CancelDailyReminder(user.ID)
	handler.scheduler.UnregisterLocationTask(user.ID)
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
