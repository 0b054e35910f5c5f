package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LockSourceManual     = "manual"
	LockSourceInactivity = "inactivity"
)

type WorkoutPlan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	WeekCount int       `gorm:"not null;default:1" json:"week_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanExercise struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PlanID      uint   `gorm:"not null;uniqueIndex:uidx_plan_slot" json:"-"`
	DayNumber   int    `gorm:"not null;uniqueIndex:uidx_plan_slot" json:"day_number"`
	Position    int    `gorm:"not null;uniqueIndex:uidx_plan_slot" json:"position"`
	Name        string `gorm:"not null" json:"name"`
	MuscleGroup string `json:"muscle_group,omitempty"`
	TargetSets  int    `json:"target_sets"`
	TargetReps  int    `json:"target_reps"`
}

// SetRecord is one logged set. The (user, day, exercise, set) slot is
// unique; editing a slot overwrites the previous record.
type SetRecord struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:uidx_set_slot" json:"-"`
	DayNumber     int       `gorm:"not null;uniqueIndex:uidx_set_slot" json:"day_number"`
	ExerciseIndex int       `gorm:"not null;uniqueIndex:uidx_set_slot" json:"exercise_index"`
	SetIndex      int       `gorm:"not null;uniqueIndex:uidx_set_slot" json:"set_index"`
	Weight        float64   `gorm:"not null;default:0" json:"weight"`
	Reps          int       `gorm:"not null;default:0" json:"reps"`
	CompletedAt   time.Time `gorm:"not null" json:"completed_at"`
	Note          string    `json:"note,omitempty"`
	IsWarmup      bool      `gorm:"not null;default:false" json:"is_warmup"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DayStatus tracks the local lock/override state of one plan day.
// Locked freezes the day's set records against edits.
type DayStatus struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;uniqueIndex:uidx_day_status" json:"-"`
	DayNumber        int        `gorm:"not null;uniqueIndex:uidx_day_status" json:"day_number"`
	Locked           bool       `gorm:"not null;default:false" json:"locked"`
	LockSource       string     `json:"lock_source,omitempty"`
	UnlockedOverride bool       `gorm:"not null;default:false" json:"unlocked_override"`
	LockedAt         *time.Time `json:"locked_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// WorkoutSession is the permanent server-side record of one training
// session. Unlocking a day never deletes sessions.
type WorkoutSession struct {
	ID             uuid.UUID  `gorm:"type:text;primaryKey" json:"id"`
	UserID         uint       `gorm:"not null;index" json:"-"`
	DayNumber      int        `gorm:"not null" json:"day_number"`
	StartedAt      time.Time  `gorm:"not null" json:"started_at"`
	LastActivityAt time.Time  `gorm:"not null" json:"last_activity_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
	AutoCompleted  bool       `gorm:"not null;default:false" json:"auto_completed"`
}
