package services

import (
	"context"
	"errors"
	"log"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrSyncTargetNotConfigured means no remote endpoint is set; entries
// stay queued until one is configured.
var ErrSyncTargetNotConfigured = errors.New("sync target is not configured")

type SyncQueueStore interface {
	Enqueue(userID uint, kind string, payload datatypes.JSON) (models.SyncEntry, error)
	ListPending(userID uint) ([]models.SyncEntry, error)
	CountPending(userID uint) (int64, error)
	MarkFailed(entryID uuid.UUID, attemptError string) error
	Remove(entryID uuid.UUID) error
}

// SyncTarget confirms one pending entry against the remote history
// service.
type SyncTarget interface {
	Push(ctx context.Context, entry models.SyncEntry) error
}

type SyncReport struct {
	Synced    int   `json:"synced"`
	Failed    int   `json:"failed"`
	Remaining int64 `json:"remaining"`
}

type SyncService struct {
	queue  SyncQueueStore
	target SyncTarget
}

func NewSyncService(queue SyncQueueStore, target SyncTarget) *SyncService {
	return &SyncService{queue: queue, target: target}
}

func (service *SyncService) Queue(userID uint, kind string, payload datatypes.JSON) error {
	_, err := service.queue.Enqueue(userID, kind, payload)
	return err
}

// SyncPendingData drains the queue in arrival order against the
// service-wide target. Failed entries stay queued with their attempt
// count bumped, so the whole operation is safely retriable.
func (service *SyncService) SyncPendingData(ctx context.Context, userID uint) (SyncReport, error) {
	return service.SyncPendingDataVia(ctx, userID, service.target)
}

// SyncPendingDataVia drains against an explicit target, which lets a
// caller route one user's queue to that user's configured server URL.
func (service *SyncService) SyncPendingDataVia(ctx context.Context, userID uint, target SyncTarget) (SyncReport, error) {
	if target == nil {
		return SyncReport{}, ErrSyncTargetNotConfigured
	}

	entries, err := service.queue.ListPending(userID)
	if err != nil {
		return SyncReport{}, err
	}

	report := SyncReport{}
	for _, entry := range entries {
		if err := target.Push(ctx, entry); err != nil {
			log.Printf("sync: push %s entry %s for user %d failed: %v", entry.Kind, entry.ID, userID, err)
			if markErr := service.queue.MarkFailed(entry.ID, err.Error()); markErr != nil {
				log.Printf("sync: mark entry %s failed: %v", entry.ID, markErr)
			}
			report.Failed++
			continue
		}
		if err := service.queue.Remove(entry.ID); err != nil {
			return report, err
		}
		report.Synced++
	}

	report.Remaining, err = service.queue.CountPending(userID)
	if err != nil {
		return report, err
	}
	return report, nil
}
