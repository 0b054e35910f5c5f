package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
	"github.com/robfig/cron/v3"
)

// Notifier delivers one reminder message to a user through whatever
// channel is configured.
type Notifier interface {
	Notify(ctx context.Context, userID uint, message string) error
}

// ReminderStore is the slice of creatine persistence the scheduler
// needs: settings to bootstrap and intakes to suppress reminders.
type ReminderStore interface {
	LoadSettings(userID uint) (models.CreatineSettings, bool, error)
	ListEnabledSettings() ([]models.CreatineSettings, error)
	IntakeLoggedOn(userID uint, dayStart time.Time) (bool, error)
}

type locationTask struct {
	location    models.ReminderLocation
	interval    time.Duration
	lastChecked time.Time
}

// ReminderScheduler keeps one daily cron entry per time-based user and
// a polled task per location-based user. It implements
// ReminderRegistrar for the configurator.
type ReminderScheduler struct {
	store    ReminderStore
	notifier Notifier
	location *time.Location
	cron     *cron.Cron

	mu            sync.Mutex
	timeEntries   map[uint]cron.EntryID
	locationTasks map[uint]*locationTask
}

func NewReminderScheduler(store ReminderStore, notifier Notifier, location *time.Location) *ReminderScheduler {
	if location == nil {
		location = time.Local
	}
	return &ReminderScheduler{
		store:         store,
		notifier:      notifier,
		location:      location,
		cron:          cron.New(cron.WithLocation(location)),
		timeEntries:   make(map[uint]cron.EntryID),
		locationTasks: make(map[uint]*locationTask),
	}
}

// Start restores schedules for every enabled user, then runs until the
// context is cancelled.
func (scheduler *ReminderScheduler) Start(ctx context.Context) {
	if err := scheduler.bootstrap(); err != nil {
		log.Printf("reminders: bootstrap failed: %v", err)
	}
	scheduler.cron.Start()

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				scheduler.cron.Stop()
				return
			case <-ticker.C:
				scheduler.evaluateDueLocationTasks(ctx)
			}
		}
	}()
}

func (scheduler *ReminderScheduler) bootstrap() error {
	rows, err := scheduler.store.ListEnabledSettings()
	if err != nil {
		return err
	}
	for _, settings := range rows {
		if settings.TimeBasedEnabled {
			if err := scheduler.ScheduleDailyReminder(settings.UserID, settings.ReminderTime); err != nil {
				log.Printf("reminders: restore daily schedule for user %d failed: %v", settings.UserID, err)
			}
		}
		if settings.LocationBasedReminder && settings.ReminderLocation != nil {
			if err := scheduler.RegisterLocationTask(settings.UserID, *settings.ReminderLocation, settings.BatteryPreset); err != nil {
				log.Printf("reminders: restore location task for user %d failed: %v", settings.UserID, err)
			}
		}
	}
	return nil
}

func (scheduler *ReminderScheduler) ScheduleDailyReminder(userID uint, reminderTime string) error {
	parsed, err := time.Parse("15:04", reminderTime)
	if err != nil {
		return fmt.Errorf("parse reminder time %q: %w", reminderTime, err)
	}

	scheduler.CancelDailyReminder(userID)

	spec := fmt.Sprintf("%d %d * * *", parsed.Minute(), parsed.Hour())
	entryID, err := scheduler.cron.AddFunc(spec, func() {
		scheduler.fireTimeReminder(context.Background(), userID)
	})
	if err != nil {
		return fmt.Errorf("register cron entry: %w", err)
	}

	scheduler.mu.Lock()
	scheduler.timeEntries[userID] = entryID
	scheduler.mu.Unlock()
	return nil
}

func (scheduler *ReminderScheduler) CancelDailyReminder(userID uint) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if entryID, ok := scheduler.timeEntries[userID]; ok {
		scheduler.cron.Remove(entryID)
		delete(scheduler.timeEntries, userID)
	}
}

func (scheduler *ReminderScheduler) RegisterLocationTask(userID uint, location models.ReminderLocation, batteryPreset string) error {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	scheduler.locationTasks[userID] = &locationTask{
		location: location,
		interval: LocationPollInterval(batteryPreset),
	}
	return nil
}

func (scheduler *ReminderScheduler) UnregisterLocationTask(userID uint) {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	delete(scheduler.locationTasks, userID)
}

func (scheduler *ReminderScheduler) HasLocationTask(userID uint) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	_, ok := scheduler.locationTasks[userID]
	return ok
}

func (scheduler *ReminderScheduler) HasDailyReminder(userID uint) bool {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	_, ok := scheduler.timeEntries[userID]
	return ok
}

// TriggerLocationCheck runs one immediate evaluation outside the poll
// cadence, as after a successful save.
func (scheduler *ReminderScheduler) TriggerLocationCheck(ctx context.Context, userID uint) {
	scheduler.mu.Lock()
	task, ok := scheduler.locationTasks[userID]
	if ok {
		task.lastChecked = time.Now()
	}
	scheduler.mu.Unlock()
	if !ok {
		return
	}
	scheduler.evaluateLocationTask(ctx, userID, task.location)
}

func (scheduler *ReminderScheduler) evaluateDueLocationTasks(ctx context.Context) {
	now := time.Now()

	scheduler.mu.Lock()
	due := make(map[uint]models.ReminderLocation)
	for userID, task := range scheduler.locationTasks {
		if now.Sub(task.lastChecked) >= task.interval {
			task.lastChecked = now
			due[userID] = task.location
		}
	}
	scheduler.mu.Unlock()

	for userID, location := range due {
		scheduler.evaluateLocationTask(ctx, userID, location)
	}
}

func (scheduler *ReminderScheduler) evaluateLocationTask(ctx context.Context, userID uint, location models.ReminderLocation) {
	if scheduler.intakeAlreadyLogged(userID) {
		return
	}

	settings, found, err := scheduler.store.LoadSettings(userID)
	if err != nil || !found {
		return
	}

	message := fmt.Sprintf("Creatine reminder: take %.1fg when you arrive at %s.", settings.DefaultGrams, location.Address)
	if err := scheduler.notifier.Notify(ctx, userID, message); err != nil {
		log.Printf("reminders: location notify for user %d failed: %v", userID, err)
	}
}

func (scheduler *ReminderScheduler) fireTimeReminder(ctx context.Context, userID uint) {
	if scheduler.intakeAlreadyLogged(userID) {
		return
	}

	settings, found, err := scheduler.store.LoadSettings(userID)
	if err != nil || !found {
		return
	}

	message := fmt.Sprintf("Creatine reminder: time for your %.1fg dose.", settings.DefaultGrams)
	if err := scheduler.notifier.Notify(ctx, userID, message); err != nil {
		log.Printf("reminders: daily notify for user %d failed: %v", userID, err)
	}
}

func (scheduler *ReminderScheduler) intakeAlreadyLogged(userID uint) bool {
	today := DateAtLocation(time.Now(), scheduler.location)
	logged, err := scheduler.store.IntakeLoggedOn(userID, today)
	if err != nil {
		log.Printf("reminders: intake lookup for user %d failed: %v", userID, err)
		return false
	}
	return logged
}

// LocationPollInterval maps the battery preset onto the background
// poll cadence.
func LocationPollInterval(batteryPreset string) time.Duration {
	switch batteryPreset {
	case models.BatteryPresetLow:
		return 15 * time.Minute
	case models.BatteryPresetHigh:
		return time.Minute
	default:
		return 5 * time.Minute
	}
}
