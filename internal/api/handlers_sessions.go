package api

import (
	"errors"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (handler *Handler) StartSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := sessionStartPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.DayNumber < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	session, err := handler.lifecycle.StartWorkout(user.ID, payload.DayNumber, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrDayLocked) {
			return apiError(c, fiber.StatusConflict, "day is locked")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to start session")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// SessionActivity bumps the inactivity clock and returns live stats
// for the screen's one-second ticker.
func (handler *Handler) SessionActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}

	now := time.Now()
	session, err := handler.lifecycle.RecordActivity(user.ID, sessionID, now)
	if err != nil {
		return sessionError(c, err)
	}

	records, err := handler.repos.SetRecords.ListByUserDay(user.ID, session.DayNumber)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load session")
	}

	return c.JSON(fiber.Map{
		"session": session,
		"stats":   services.BuildLiveSessionStats(session, records, now),
	})
}

func (handler *Handler) EndSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid session id")
	}

	session, err := handler.lifecycle.EndWorkout(user.ID, sessionID, time.Now())
	if err != nil {
		return sessionError(c, err)
	}

	handler.queueSync(user.ID, models.SyncKindSessionComplete, session)
	return c.JSON(session)
}

func (handler *Handler) ListSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.repos.Sessions.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

// DeleteSessions is the bulk history wipe behind the settings screen's
// danger zone.
func (handler *Handler) DeleteSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.repos.Sessions.DeleteAllForUser(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete sessions")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return apiError(c, fiber.StatusNotFound, "session not found")
	case errors.Is(err, services.ErrSessionEnded):
		return apiError(c, fiber.StatusConflict, "session already ended")
	default:
		return apiError(c, fiber.StatusInternalServerError, "session operation failed")
	}
}
