package services

import (
	"errors"
	"net/url"
	"strings"

	"github.com/Superak0s/SuperGym-App-sub001/internal/models"
)

var (
	ErrServerURLEmpty   = errors.New("server url is required")
	ErrServerURLInvalid = errors.New("server url must start with http:// or https://")
)

type SettingsUserStore interface {
	FindByID(userID uint) (models.User, error)
	UpdateDisplayName(userID uint, displayName string) error
	UpdateServerURL(userID uint, serverURL string) error
}

type SettingsService struct {
	users SettingsUserStore
}

func NewSettingsService(users SettingsUserStore) *SettingsService {
	return &SettingsService{users: users}
}

// ValidateServerURL normalizes the user-entered base URL and requires
// an absolute http(s) URL with a host. The trailing slash is stripped
// so path joining stays predictable.
func ValidateServerURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrServerURLEmpty
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", ErrServerURLInvalid
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrServerURLInvalid
	}
	if parsed.Host == "" {
		return "", ErrServerURLInvalid
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (service *SettingsService) UpdateServerURL(userID uint, raw string) (string, error) {
	normalized, err := ValidateServerURL(raw)
	if err != nil {
		return "", err
	}
	if err := service.users.UpdateServerURL(userID, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

func (service *SettingsService) ServerURL(userID uint) (string, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.ServerURL, nil
}

func (service *SettingsService) UpdateDisplayName(userID uint, displayName string) error {
	return service.users.UpdateDisplayName(userID, strings.TrimSpace(displayName))
}

// ReconcileCreatineSettings merges a remote settings snapshot into the
// local row. Valid local data wins over an incomplete remote blob;
// remote fills only the fields the local row never set.
func ReconcileCreatineSettings(local models.CreatineSettings, localFound bool, remote *models.CreatineSettings) models.CreatineSettings {
	if !localFound {
		if remote != nil {
			return NormalizeCreatineSettings(*remote)
		}
		return NormalizeCreatineSettings(models.CreatineSettings{})
	}

	merged := local
	if remote != nil {
		if strings.TrimSpace(merged.ReminderTime) == "" {
			merged.ReminderTime = remote.ReminderTime
		}
		if merged.DefaultGrams <= 0 {
			merged.DefaultGrams = remote.DefaultGrams
		}
		if merged.ReminderLocation == nil {
			merged.ReminderLocation = remote.ReminderLocation
		}
	}
	return NormalizeCreatineSettings(merged)
}

// NormalizeCreatineSettings backfills defaults so no consumer has to
// re-check optional fields.
func NormalizeCreatineSettings(settings models.CreatineSettings) models.CreatineSettings {
	if strings.TrimSpace(settings.ReminderTime) == "" {
		settings.ReminderTime = models.DefaultReminderTime
	}
	if settings.DefaultGrams <= 0 {
		settings.DefaultGrams = models.DefaultGramsPerDose
	}
	if !models.ValidNotificationType(settings.NotificationType) {
		settings.NotificationType = models.NotificationTypeNotification
	}
	if !models.ValidBatteryPreset(settings.BatteryPreset) {
		settings.BatteryPreset = models.BatteryPresetBalanced
	}
	return settings
}
