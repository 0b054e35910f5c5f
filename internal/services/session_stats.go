package services

import (
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

// LiveSessionStats is what the workout screen's one-second ticker
// displays while a session runs.
type LiveSessionStats struct {
	Elapsed       time.Duration `json:"elapsed_seconds"`
	CurrentRest   time.Duration `json:"current_rest_seconds"`
	CompletedSets int           `json:"completed_sets"`
	Active        bool          `json:"active"`
}

// BuildLiveSessionStats derives elapsed time since session start and
// the rest duration since the most recent completed set. For an ended
// session both clocks freeze at the end timestamp.
func BuildLiveSessionStats(session models.WorkoutSession, records []models.SetRecord, now time.Time) LiveSessionStats {
	reference := now
	active := session.EndedAt == nil
	if !active {
		reference = *session.EndedAt
	}

	elapsed := reference.Sub(session.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	stats := LiveSessionStats{
		Elapsed: elapsed,
		Active:  active,
	}

	var lastCompleted time.Time
	for _, record := range records {
		if record.DayNumber != session.DayNumber {
			continue
		}
		stats.CompletedSets++
		if record.CompletedAt.After(lastCompleted) {
			lastCompleted = record.CompletedAt
		}
	}

	if !lastCompleted.IsZero() && lastCompleted.Before(reference) {
		stats.CurrentRest = reference.Sub(lastCompleted)
	}

	return stats
}
