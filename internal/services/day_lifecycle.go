package services

import (
	"errors"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/google/uuid"
)

// InactivityTimeout is how long a session may idle before it is
// auto-completed and its day locked.
const InactivityTimeout = 30 * time.Minute

type DayState string

const (
	DayStateUnlockedEmpty    DayState = "unlocked-empty"
	DayStateUnlockedPartial  DayState = "unlocked-partial"
	DayStateUnlockedComplete DayState = "unlocked-complete"
	DayStateLocked           DayState = "locked"
)

var (
	ErrDayLocked       = errors.New("day is locked")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session already ended")
)

type DayStatusStore interface {
	FindByUserDay(userID uint, dayNumber int) (models.DayStatus, bool, error)
	Lock(userID uint, dayNumber int, source string, lockedAt time.Time) error
	Unlock(userID uint, dayNumber int) error
	UnlockAll(userID uint) error
}

type DaySetStore interface {
	ListByUserDay(userID uint, dayNumber int) ([]models.SetRecord, error)
	DeleteByUserDay(userID uint, dayNumber int) error
	DeleteAllForUser(userID uint) error
	CountByUserDay(userID uint, dayNumber int) (int64, error)
}

type SessionStore interface {
	Create(session *models.WorkoutSession) error
	Save(session *models.WorkoutSession) error
	FindByID(userID uint, sessionID uuid.UUID) (models.WorkoutSession, bool, error)
	FindActive(userID uint) (models.WorkoutSession, bool, error)
}

type DayPlanReader interface {
	ExercisesForDay(userID uint, dayNumber int) ([]models.PlanExercise, error)
}

type DayLifecycleService struct {
	statuses DayStatusStore
	sets     DaySetStore
	sessions SessionStore
	plans    DayPlanReader
}

func NewDayLifecycleService(statuses DayStatusStore, sets DaySetStore, sessions SessionStore, plans DayPlanReader) *DayLifecycleService {
	return &DayLifecycleService{
		statuses: statuses,
		sets:     sets,
		sessions: sessions,
		plans:    plans,
	}
}

// StateForDay resolves the day's lifecycle state, first applying the
// inactivity auto-completion check the screens run on mount.
func (service *DayLifecycleService) StateForDay(userID uint, dayNumber int, now time.Time) (DayState, error) {
	if err := service.AutoCompleteIdleSession(userID, now); err != nil {
		return "", err
	}

	status, found, err := service.statuses.FindByUserDay(userID, dayNumber)
	if err != nil {
		return "", err
	}
	if found && status.Locked {
		return DayStateLocked, nil
	}

	completedCount, err := service.sets.CountByUserDay(userID, dayNumber)
	if err != nil {
		return "", err
	}
	if completedCount == 0 {
		return DayStateUnlockedEmpty, nil
	}

	exercises, err := service.plans.ExercisesForDay(userID, dayNumber)
	if err != nil {
		return "", err
	}
	target := int64(0)
	for _, exercise := range exercises {
		target += int64(exercise.TargetSets)
	}
	if target > 0 && completedCount >= target {
		return DayStateUnlockedComplete, nil
	}
	return DayStateUnlockedPartial, nil
}

// AutoCompleteIdleSession ends the active session and locks its day
// when the inactivity timeout has elapsed.
func (service *DayLifecycleService) AutoCompleteIdleSession(userID uint, now time.Time) error {
	session, found, err := service.sessions.FindActive(userID)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if now.Sub(session.LastActivityAt) < InactivityTimeout {
		return nil
	}

	endedAt := session.LastActivityAt.Add(InactivityTimeout)
	session.EndedAt = &endedAt
	session.AutoCompleted = true
	if err := service.sessions.Save(&session); err != nil {
		return err
	}
	return service.statuses.Lock(userID, session.DayNumber, models.LockSourceInactivity, endedAt)
}

func (service *DayLifecycleService) StartWorkout(userID uint, dayNumber int, now time.Time) (models.WorkoutSession, error) {
	if err := service.AutoCompleteIdleSession(userID, now); err != nil {
		return models.WorkoutSession{}, err
	}

	status, found, err := service.statuses.FindByUserDay(userID, dayNumber)
	if err != nil {
		return models.WorkoutSession{}, err
	}
	if found && status.Locked {
		return models.WorkoutSession{}, ErrDayLocked
	}

	session := models.WorkoutSession{
		ID:             uuid.New(),
		UserID:         userID,
		DayNumber:      dayNumber,
		StartedAt:      now,
		LastActivityAt: now,
	}
	if err := service.sessions.Create(&session); err != nil {
		return models.WorkoutSession{}, err
	}
	return session, nil
}

func (service *DayLifecycleService) RecordActivity(userID uint, sessionID uuid.UUID, now time.Time) (models.WorkoutSession, error) {
	session, found, err := service.sessions.FindByID(userID, sessionID)
	if err != nil {
		return models.WorkoutSession{}, err
	}
	if !found {
		return models.WorkoutSession{}, ErrSessionNotFound
	}
	if session.EndedAt != nil {
		return models.WorkoutSession{}, ErrSessionEnded
	}

	session.LastActivityAt = now
	if err := service.sessions.Save(&session); err != nil {
		return models.WorkoutSession{}, err
	}
	return session, nil
}

// EndWorkout closes the session explicitly and locks its day.
func (service *DayLifecycleService) EndWorkout(userID uint, sessionID uuid.UUID, now time.Time) (models.WorkoutSession, error) {
	session, found, err := service.sessions.FindByID(userID, sessionID)
	if err != nil {
		return models.WorkoutSession{}, err
	}
	if !found {
		return models.WorkoutSession{}, ErrSessionNotFound
	}
	if session.EndedAt != nil {
		return models.WorkoutSession{}, ErrSessionEnded
	}

	session.EndedAt = &now
	session.LastActivityAt = now
	if err := service.sessions.Save(&session); err != nil {
		return models.WorkoutSession{}, err
	}
	if err := service.statuses.Lock(userID, session.DayNumber, models.LockSourceManual, now); err != nil {
		return models.WorkoutSession{}, err
	}
	return session, nil
}

// UnlockDay resets the day's local working state. Session history is
// the permanent record and is deliberately left untouched.
func (service *DayLifecycleService) UnlockDay(userID uint, dayNumber int) error {
	if err := service.sets.DeleteByUserDay(userID, dayNumber); err != nil {
		return err
	}
	return service.statuses.Unlock(userID, dayNumber)
}

// UnlockAll clears every day's completed and locked state while
// preserving all workout sessions.
func (service *DayLifecycleService) UnlockAll(userID uint) error {
	if err := service.sets.DeleteAllForUser(userID); err != nil {
		return err
	}
	return service.statuses.UnlockAll(userID)
}
