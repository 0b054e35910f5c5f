package api

import (
	"errors"

	"github.com/Superak0s/SuperGym-App-sub001/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SyncNow drains the user's pending-sync queue against the server URL
// stored on the account, falling back to the deployment-wide target
// when the user has not configured one. Failed entries stay queued, so
// the client can simply retry.
func (handler *Handler) SyncNow(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var report services.SyncReport
	var err error
	if user.ServerURL != "" {
		report, err = handler.sync.SyncPendingDataVia(c.Context(), user.ID, handler.newSyncTarget(user.ServerURL))
	} else {
		report, err = handler.sync.SyncPendingData(c.Context(), user.ID)
	}
	if err != nil {
		if errors.Is(err, services.ErrSyncTargetNotConfigured) {
			return apiError(c, fiber.StatusConflict, "set a server url first")
		}
		return apiError(c, fiber.StatusInternalServerError, "sync failed")
	}
	return c.JSON(report)
}
