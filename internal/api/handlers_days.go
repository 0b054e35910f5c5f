package api

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	state, err := handler.lifecycle.StateForDay(user.ID, day, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}

	records, err := handler.repos.SetRecords.ListByUserDay(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}

	return c.JSON(fiber.Map{
		"day":     day,
		"state":   state,
		"records": records,
	})
}

// ListLockedDays returns the currently locked day numbers for the plan
// overview, after running the same inactivity check the day screens do.
func (handler *Handler) ListLockedDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.lifecycle.AutoCompleteIdleSession(user.ID, time.Now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load days")
	}

	statuses, err := handler.repos.DayStatus.ListLockedByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load days")
	}

	lockedDays := make([]int, 0, len(statuses))
	for _, status := range statuses {
		lockedDays = append(lockedDays, status.DayNumber)
	}
	return c.JSON(fiber.Map{"locked_days": lockedDays})
}

// SaveSetDetails writes one set slot. Locked days reject edits until
// explicitly unlocked.
func (handler *Handler) SaveSetDetails(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, exerciseIndex, setIndex, err := parseSetSlot(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid set slot")
	}

	payload := setPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Weight < 0 || payload.Reps < 0 {
		return apiError(c, fiber.StatusBadRequest, "weight and reps must be non-negative")
	}

	locked, err := handler.dayIsLocked(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}
	if locked {
		return apiError(c, fiber.StatusConflict, "day is locked")
	}

	completedAt := time.Now()
	if payload.CompletedAt != nil {
		completedAt = *payload.CompletedAt
	}

	record := models.SetRecord{
		UserID:        user.ID,
		DayNumber:     day,
		ExerciseIndex: exerciseIndex,
		SetIndex:      setIndex,
		Weight:        payload.Weight,
		Reps:          payload.Reps,
		CompletedAt:   completedAt,
		Note:          payload.Note,
		IsWarmup:      payload.IsWarmup,
	}
	if err := handler.repos.SetRecords.UpsertSlot(&record); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save set")
	}

	handler.queueSync(user.ID, models.SyncKindSetRecord, record)

	if session, found, err := handler.repos.Sessions.FindActive(user.ID); err == nil && found && session.EndedAt == nil {
		if _, err := handler.lifecycle.RecordActivity(user.ID, session.ID, completedAt); err != nil {
			log.Printf("days: record activity for session %s failed: %v", session.ID, err)
		}
	}

	return c.JSON(record)
}

func (handler *Handler) DeleteSetDetails(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, exerciseIndex, setIndex, err := parseSetSlot(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid set slot")
	}

	locked, err := handler.dayIsLocked(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}
	if locked {
		return apiError(c, fiber.StatusConflict, "day is locked")
	}

	if err := handler.repos.SetRecords.DeleteSlot(user.ID, day, exerciseIndex, setIndex); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete set")
	}

	handler.queueSync(user.ID, models.SyncKindSetRecord, fiber.Map{
		"deleted":        true,
		"day_number":     day,
		"exercise_index": exerciseIndex,
		"set_index":      setIndex,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) LockDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	if err := handler.repos.DayStatus.Lock(user.ID, day, models.LockSourceManual, time.Now()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to lock day")
	}

	handler.queueSync(user.ID, models.SyncKindDayStatus, fiber.Map{"day_number": day, "locked": true})
	return c.JSON(fiber.Map{"day": day, "state": services.DayStateLocked})
}

// UnlockDay resets the day's local working state; server-side session
// history survives by design.
func (handler *Handler) UnlockDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day")
	}

	if err := handler.lifecycle.UnlockDay(user.ID, day); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock day")
	}

	handler.queueSync(user.ID, models.SyncKindDayStatus, fiber.Map{"day_number": day, "locked": false})
	return c.JSON(fiber.Map{"day": day, "state": services.DayStateUnlockedEmpty})
}

func (handler *Handler) UnlockAllDays(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.lifecycle.UnlockAll(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to unlock days")
	}

	handler.queueSync(user.ID, models.SyncKindDayStatus, fiber.Map{"unlocked_all": true})
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) dayIsLocked(userID uint, dayNumber int) (bool, error) {
	status, found, err := handler.repos.DayStatus.FindByUserDay(userID, dayNumber)
	if err != nil {
		return false, err
	}
	return found && status.Locked, nil
}

var errInvalidSetSlot = errors.New("invalid set slot")

func parseSetSlot(c *fiber.Ctx) (int, int, int, error) {
	day, err := parseDayParam(c)
	if err != nil {
		return 0, 0, 0, err
	}
	exerciseIndex, err := parseIntParam(c, "exercise")
	if err != nil || exerciseIndex < 0 {
		return 0, 0, 0, errInvalidSetSlot
	}
	setIndex, err := parseIntParam(c, "set")
	if err != nil || setIndex < 0 {
		return 0, 0, 0, errInvalidSetSlot
	}
	return day, exerciseIndex, setIndex, nil
}

// queueSync records a pending-sync entry; queue failures are logged,
// never surfaced, since the local commit already succeeded.
func (handler *Handler) queueSync(userID uint, kind string, payload any) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		log.Printf("sync: encode %s payload failed: %v", kind, err)
		return
	}
	if err := handler.sync.Queue(userID, kind, encoded); err != nil {
		log.Printf("sync: queue %s entry failed: %v", kind, err)
	}
}
