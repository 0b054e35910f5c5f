package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SyncKindSetRecord       = "set_record"
	SyncKindDayStatus       = "day_status"
	SyncKindCreatineIntake  = "creatine_intake"
	SyncKindSessionComplete = "session_complete"
)

// SyncEntry is one locally committed change awaiting confirmation from
// the remote service.
type SyncEntry struct {
	ID        uuid.UUID      `gorm:"type:text;primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"-"`
	Kind      string         `gorm:"not null" json:"kind"`
	Payload   datatypes.JSON `json:"payload"`
	QueuedAt  time.Time      `gorm:"not null" json:"queued_at"`
	Attempts  int            `gorm:"not null;default:0" json:"attempts"`
	LastError string         `json:"last_error,omitempty"`
}
