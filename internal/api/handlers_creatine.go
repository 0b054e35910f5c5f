package api

import (
	"errors"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCreatineSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	settings, found, err := handler.repos.Creatine.LoadSettings(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load creatine settings")
	}

	return c.JSON(fiber.Map{
		"settings":   services.ReconcileCreatineSettings(settings, found, nil),
		"configured": found,
	})
}

// SaveCreatineSettings runs the configurator's validate → commit →
// reschedule sequence and maps each rejection onto its own message.
func (handler *Handler) SaveCreatineSettings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := creatineSavePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	outcome, err := handler.configurator.Save(c.Context(), user.ID, payload.CreatineSettingsInput, payload.Capabilities)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReminderConditionRequired):
			return apiError(c, fiber.StatusBadRequest, "enable a time or location condition first")
		case errors.Is(err, services.ErrReminderLocationNotSet):
			return apiError(c, fiber.StatusBadRequest, "set a reminder location first")
		case errors.Is(err, services.ErrInvalidGramsAmount):
			return apiError(c, fiber.StatusBadRequest, "invalid amount")
		case errors.Is(err, services.ErrInvalidReminderTime):
			return apiError(c, fiber.StatusBadRequest, "invalid reminder time")
		case errors.Is(err, services.ErrInvalidNotificationType):
			return apiError(c, fiber.StatusBadRequest, "invalid notification type")
		case errors.Is(err, services.ErrNotificationsUnavailable):
			return apiError(c, fiber.StatusForbidden, "notification permission required")
		case errors.Is(err, services.ErrLocationPermissionDenied):
			return apiError(c, fiber.StatusForbidden, "location permission required")
		case errors.Is(err, services.ErrBackgroundLocationDenied):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":         "background location permission required",
				"open_settings": true,
			})
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save creatine settings")
		}
	}

	return c.JSON(outcome)
}

func (handler *Handler) SaveReminderLocation(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	location := models.ReminderLocation{}
	if err := c.BodyParser(&location); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if location.Lat < -90 || location.Lat > 90 || location.Lng < -180 || location.Lng > 180 {
		return apiError(c, fiber.StatusBadRequest, "invalid coordinates")
	}
	if location.Radius <= 0 {
		location.Radius = 100
	}

	if err := handler.repos.Creatine.SaveLocation(user.ID, location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save reminder location")
	}
	return c.JSON(location)
}

func (handler *Handler) LogCreatineIntake(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := intakePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	grams := payload.Grams
	if grams <= 0 {
		settings, _, err := handler.repos.Creatine.LoadSettings(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to log intake")
		}
		grams = services.NormalizeCreatineSettings(settings).DefaultGrams
	}

	now := time.Now()
	intake := models.CreatineIntake{
		UserID:  user.ID,
		Date:    services.DateAtLocation(now, handler.location),
		Grams:   grams,
		TakenAt: now,
	}
	if err := handler.repos.Creatine.LogIntake(&intake); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to log intake")
	}

	handler.queueSync(user.ID, models.SyncKindCreatineIntake, intake)
	return c.Status(fiber.StatusCreated).JSON(intake)
}

// ListCreatineIntakes returns the logged doses for the last `days`
// calendar days (default 30), oldest first.
func (handler *Handler) ListCreatineIntakes(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
	}

	to := services.DateAtLocation(time.Now(), handler.location).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)
	intakes, err := handler.repos.Creatine.ListIntakes(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load intakes")
	}
	return c.JSON(fiber.Map{"intakes": intakes})
}

// EvaluateCreatineReminder forces one immediate location evaluation,
// as the configurator does right after a successful save.
func (handler *Handler) EvaluateCreatineReminder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.scheduler.TriggerLocationCheck(c.Context(), user.ID)
	return c.JSON(fiber.Map{"ok": true})
}
