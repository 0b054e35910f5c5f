package services

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/matching"
	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

// PerformanceEntry is one historical set flattened out of the completed
// records for a single canonical exercise. Derived, never persisted.
type PerformanceEntry struct {
	Date          time.Time `json:"date"`
	Weight        float64   `json:"weight"`
	Reps          int       `json:"reps"`
	Volume        float64   `json:"volume"`
	DayNumber     int       `json:"day_number"`
	ExerciseIndex int       `json:"exercise_index"`
	SetIndex      int       `json:"set_index"`
	Note          string    `json:"note,omitempty"`
}

type PerformanceSummary struct {
	Last          PerformanceEntry `json:"last"`
	Best          PerformanceEntry `json:"best"`
	TotalAttempts int              `json:"total_attempts"`
}

type PerformanceSetReader interface {
	ListByUser(userID uint) ([]models.SetRecord, error)
}

type PerformancePlanReader interface {
	LoadByUser(userID uint) (models.WorkoutPlan, []models.PlanExercise, bool, error)
}

type PerformanceService struct {
	sets  PerformanceSetReader
	plans PerformancePlanReader
}

func NewPerformanceService(sets PerformanceSetReader, plans PerformancePlanReader) *PerformanceService {
	return &PerformanceService{sets: sets, plans: plans}
}

// SummaryForExercise aggregates the user's history for one exercise,
// matched canonically across renames. A nil summary means no eligible
// history, which callers must present distinctly from a load failure.
func (service *PerformanceService) SummaryForExercise(userID uint, exerciseName string, now time.Time, location *time.Location) (summary *PerformanceSummary, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("performance: aggregation panic for user %d exercise %q: %v", userID, exerciseName, recovered)
			summary = nil
			err = nil
		}
	}()

	_, exercises, found, err := service.plans.LoadByUser(userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	records, err := service.sets.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	return BuildPerformanceSummary(exercises, records, exerciseName, now, location), nil
}

// BuildPerformanceSummary is the pure aggregation step. It excludes
// warm-up sets and entries dated today (local midnight cutoff), selects
// "last" by most recent date and "best" by maximum volume. Volume ties
// break toward the more recent entry.
func BuildPerformanceSummary(exercises []models.PlanExercise, records []models.SetRecord, exerciseName string, now time.Time, location *time.Location) *PerformanceSummary {
	if location == nil {
		location = time.Local
	}

	knownNames := planExerciseNames(exercises)
	target := matching.Canonicalize(exerciseName, knownNames)
	exerciseBySlot := indexExercisesBySlot(exercises)
	todayStart := DateAtLocation(now, location)

	entries := make([]PerformanceEntry, 0, len(records))
	for _, record := range records {
		if record.IsWarmup {
			continue
		}

		exercise, ok := exerciseBySlot[exerciseSlot{day: record.DayNumber, position: record.ExerciseIndex}]
		if !ok {
			continue
		}
		canonical := matching.Canonicalize(exercise.Name, knownNames)
		if !strings.EqualFold(canonical, target) {
			continue
		}

		if !record.CompletedAt.In(location).Before(todayStart) {
			continue
		}

		weight := coerceFinite(record.Weight)
		reps := record.Reps
		if reps < 0 {
			reps = 0
		}

		entries = append(entries, PerformanceEntry{
			Date:          record.CompletedAt,
			Weight:        weight,
			Reps:          reps,
			Volume:        weight * float64(reps),
			DayNumber:     record.DayNumber,
			ExerciseIndex: record.ExerciseIndex,
			SetIndex:      record.SetIndex,
			Note:          record.Note,
		})
	}

	if len(entries) == 0 {
		return nil
	}

	last := entries[0]
	best := entries[0]
	for _, entry := range entries[1:] {
		if entry.Date.After(last.Date) {
			last = entry
		}
		if entry.Volume > best.Volume || (entry.Volume == best.Volume && entry.Date.After(best.Date)) {
			best = entry
		}
	}

	return &PerformanceSummary{
		Last:          last,
		Best:          best,
		TotalAttempts: len(entries),
	}
}

type exerciseSlot struct {
	day      int
	position int
}

func indexExercisesBySlot(exercises []models.PlanExercise) map[exerciseSlot]models.PlanExercise {
	bySlot := make(map[exerciseSlot]models.PlanExercise, len(exercises))
	for _, exercise := range exercises {
		bySlot[exerciseSlot{day: exercise.DayNumber, position: exercise.Position}] = exercise
	}
	return bySlot
}

func planExerciseNames(exercises []models.PlanExercise) []string {
	seen := make(map[string]struct{}, len(exercises))
	names := make([]string, 0, len(exercises))
	for _, exercise := range exercises {
		if _, duplicate := seen[exercise.Name]; duplicate {
			continue
		}
		seen[exercise.Name] = struct{}{}
		names = append(names, exercise.Name)
	}
	return names
}

// coerceFinite maps non-finite and negative weights to 0 so a corrupt
// record cannot leak NaN volumes into summaries.
func coerceFinite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value < 0 {
		return 0
	}
	return value
}

// DateAtLocation truncates an instant to local midnight.
func DateAtLocation(instant time.Time, location *time.Location) time.Time {
	localized := instant.In(location)
	return time.Date(localized.Year(), localized.Month(), localized.Day(), 0, 0, 0, 0, location)
}
