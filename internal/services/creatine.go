package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

var (
	ErrReminderConditionRequired = errors.New("enable a reminder condition")
	ErrReminderLocationNotSet    = errors.New("set a reminder location first")
	ErrInvalidGramsAmount        = errors.New("invalid creatine amount")
	ErrInvalidReminderTime       = errors.New("invalid reminder time")
	ErrInvalidNotificationType   = errors.New("invalid notification type")
	ErrNotificationsUnavailable  = errors.New("notification permission required")
	ErrLocationPermissionDenied  = errors.New("location permission required")
	ErrBackgroundLocationDenied  = errors.New("background location permission required")
)

// CreatineSettingsInput carries the raw form values from the settings
// screen. DefaultGrams stays a string until the dosage step parses it.
type CreatineSettingsInput struct {
	TimeBasedEnabled      bool   `json:"time_based_enabled"`
	LocationBasedReminder bool   `json:"location_based_reminder"`
	ReminderTime          string `json:"reminder_time"`
	DefaultGrams          string `json:"default_grams"`
	NotificationType      string `json:"notification_type"`
	BatteryPreset         string `json:"battery_preset"`
}

type SaveOutcome struct {
	Settings models.CreatineSettings `json:"settings"`
	Summary  string                  `json:"summary"`
	Warnings []string                `json:"warnings,omitempty"`
}

// CapabilityGateway fronts the operating environment's permission
// systems. Implementations decide what "capability" means for their
// delivery channel.
type CapabilityGateway interface {
	EnsureNotificationCapability(ctx context.Context, userID uint) error
	EnsureForegroundLocation(ctx context.Context, userID uint) error
	EnsureBackgroundLocation(ctx context.Context, userID uint) error
}

// ReminderRegistrar owns the scheduled reminder state for each user.
type ReminderRegistrar interface {
	ScheduleDailyReminder(userID uint, reminderTime string) error
	CancelDailyReminder(userID uint)
	RegisterLocationTask(userID uint, location models.ReminderLocation, batteryPreset string) error
	UnregisterLocationTask(userID uint)
	TriggerLocationCheck(ctx context.Context, userID uint)
}

type CreatineSettingsStore interface {
	LoadSettings(userID uint) (models.CreatineSettings, bool, error)
	SaveSettings(settings *models.CreatineSettings) error
}

// ReportedCapabilities is the production gateway: the mobile client
// runs the OS permission prompts and reports the outcome with the save
// request.
type ReportedCapabilities struct {
	Notifications      bool `json:"notifications_granted"`
	ForegroundLocation bool `json:"foreground_location_granted"`
	BackgroundLocation bool `json:"background_location_granted"`
}

func (reported ReportedCapabilities) EnsureNotificationCapability(ctx context.Context, userID uint) error {
	if !reported.Notifications {
		return ErrNotificationsUnavailable
	}
	return nil
}

func (reported ReportedCapabilities) EnsureForegroundLocation(ctx context.Context, userID uint) error {
	if !reported.ForegroundLocation {
		return ErrLocationPermissionDenied
	}
	return nil
}

func (reported ReportedCapabilities) EnsureBackgroundLocation(ctx context.Context, userID uint) error {
	if !reported.BackgroundLocation {
		return ErrBackgroundLocationDenied
	}
	return nil
}

type CreatineConfigurator struct {
	store     CreatineSettingsStore
	registrar ReminderRegistrar

	// Saves are serialized per user so overlapping save attempts
	// cannot interleave commit and reschedule steps.
	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

func NewCreatineConfigurator(store CreatineSettingsStore, registrar ReminderRegistrar) *CreatineConfigurator {
	return &CreatineConfigurator{
		store:     store,
		registrar: registrar,
		userLocks: make(map[uint]*sync.Mutex),
	}
}

// Save runs the full validate → commit → reschedule sequence. Every
// validation failure returns a distinct sentinel before any side
// effect; scheduling failures after the commit surface as warnings
// because the settings are already durable.
func (configurator *CreatineConfigurator) Save(ctx context.Context, userID uint, input CreatineSettingsInput, capabilities CapabilityGateway) (SaveOutcome, error) {
	lock := configurator.lockForUser(userID)
	lock.Lock()
	defer lock.Unlock()

	if !input.TimeBasedEnabled && !input.LocationBasedReminder {
		return SaveOutcome{}, ErrReminderConditionRequired
	}

	existing, found, err := configurator.store.LoadSettings(userID)
	if err != nil {
		return SaveOutcome{}, fmt.Errorf("load creatine settings: %w", err)
	}
	if input.LocationBasedReminder && (!found || existing.ReminderLocation == nil) {
		return SaveOutcome{}, ErrReminderLocationNotSet
	}

	grams, err := ParseGramsInput(input.DefaultGrams)
	if err != nil {
		return SaveOutcome{}, err
	}

	reminderTime := strings.TrimSpace(input.ReminderTime)
	if reminderTime == "" {
		reminderTime = models.DefaultReminderTime
	}
	if input.TimeBasedEnabled {
		if _, err := time.Parse("15:04", reminderTime); err != nil {
			return SaveOutcome{}, ErrInvalidReminderTime
		}
	}

	notificationType := strings.TrimSpace(input.NotificationType)
	if notificationType == "" {
		notificationType = models.NotificationTypeNotification
	}
	if !models.ValidNotificationType(notificationType) {
		return SaveOutcome{}, ErrInvalidNotificationType
	}

	batteryPreset := strings.TrimSpace(input.BatteryPreset)
	if batteryPreset == "" {
		batteryPreset = models.BatteryPresetBalanced
	}
	if !models.ValidBatteryPreset(batteryPreset) {
		batteryPreset = models.BatteryPresetBalanced
	}

	if err := capabilities.EnsureNotificationCapability(ctx, userID); err != nil {
		return SaveOutcome{}, ErrNotificationsUnavailable
	}
	if input.LocationBasedReminder {
		if err := capabilities.EnsureForegroundLocation(ctx, userID); err != nil {
			return SaveOutcome{}, ErrLocationPermissionDenied
		}
		if err := capabilities.EnsureBackgroundLocation(ctx, userID); err != nil {
			return SaveOutcome{}, ErrBackgroundLocationDenied
		}
	}

	settings := existing
	if !found {
		settings = models.CreatineSettings{UserID: userID}
	}
	settings.TimeBasedEnabled = input.TimeBasedEnabled
	settings.LocationBasedReminder = input.LocationBasedReminder
	settings.ReminderTime = reminderTime
	settings.DefaultGrams = grams
	settings.NotificationType = notificationType
	settings.BatteryPreset = batteryPreset

	if err := configurator.store.SaveSettings(&settings); err != nil {
		return SaveOutcome{}, fmt.Errorf("persist creatine settings: %w", err)
	}

	// Stale schedules for this user are always cleared before the new
	// condition set is registered.
	configurator.registrar.CancelDailyReminder(userID)
	configurator.registrar.UnregisterLocationTask(userID)

	warnings := make([]string, 0, 2)
	if settings.TimeBasedEnabled {
		if err := configurator.registrar.ScheduleDailyReminder(userID, settings.ReminderTime); err != nil {
			warnings = append(warnings, fmt.Sprintf("daily reminder not scheduled: %v", err))
		}
	}
	if settings.LocationBasedReminder {
		if err := configurator.registrar.RegisterLocationTask(userID, *settings.ReminderLocation, settings.BatteryPreset); err != nil {
			warnings = append(warnings, fmt.Sprintf("location reminder not registered: %v", err))
		} else {
			configurator.registrar.TriggerLocationCheck(ctx, userID)
		}
	}

	return SaveOutcome{
		Settings: settings,
		Summary:  saveSummary(settings),
		Warnings: warnings,
	}, nil
}

func (configurator *CreatineConfigurator) lockForUser(userID uint) *sync.Mutex {
	configurator.mu.Lock()
	defer configurator.mu.Unlock()

	lock, ok := configurator.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		configurator.userLocks[userID] = lock
	}
	return lock
}

// ParseGramsInput accepts the raw dosage string and requires a strictly
// positive finite number.
func ParseGramsInput(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidGramsAmount
	}
	grams, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || grams <= 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return 0, ErrInvalidGramsAmount
	}
	return grams, nil
}

func saveSummary(settings models.CreatineSettings) string {
	switch {
	case settings.TimeBasedEnabled && settings.LocationBasedReminder:
		return fmt.Sprintf("Creatine reminder set for %s daily and when you arrive at %s.",
			settings.ReminderTime, reminderAddress(settings))
	case settings.LocationBasedReminder:
		return fmt.Sprintf("Creatine reminder set for when you arrive at %s.", reminderAddress(settings))
	default:
		return fmt.Sprintf("Daily creatine reminder set for %s.", settings.ReminderTime)
	}
}

func reminderAddress(settings models.CreatineSettings) string {
	if settings.ReminderLocation == nil || strings.TrimSpace(settings.ReminderLocation.Address) == "" {
		return "your saved location"
	}
	return settings.ReminderLocation.Address
}
