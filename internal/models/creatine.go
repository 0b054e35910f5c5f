package models

import "time"

const (
	NotificationTypeNotification = "notification"
	NotificationTypeAlarm        = "alarm"
	NotificationTypeBoth         = "both"
)

const (
	BatteryPresetLow      = "low"
	BatteryPresetBalanced = "balanced"
	BatteryPresetHigh     = "high"
)

const (
	DefaultReminderTime = "09:00"
	DefaultGramsPerDose = 5
)

type ReminderLocation struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
	Radius  float64 `json:"radius"`
}

// CreatineSettings holds the dual-condition reminder configuration,
// one row per user.
type CreatineSettings struct {
	ID                    uint              `gorm:"primaryKey" json:"id"`
	UserID                uint              `gorm:"not null;uniqueIndex" json:"-"`
	TimeBasedEnabled      bool              `gorm:"not null;default:false" json:"time_based_enabled"`
	LocationBasedReminder bool              `gorm:"not null;default:false" json:"location_based_reminder"`
	ReminderTime          string            `gorm:"not null;default:'09:00'" json:"reminder_time"`
	DefaultGrams          float64           `gorm:"not null;default:5" json:"default_grams"`
	NotificationType      string            `gorm:"not null;default:notification" json:"notification_type"`
	ReminderLocation      *ReminderLocation `gorm:"serializer:json" json:"reminder_location,omitempty"`
	BatteryPreset         string            `gorm:"not null;default:balanced" json:"battery_preset"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}

func ValidNotificationType(value string) bool {
	switch value {
	case NotificationTypeNotification, NotificationTypeAlarm, NotificationTypeBoth:
		return true
	default:
		return false
	}
}

func ValidBatteryPreset(value string) bool {
	switch value {
	case BatteryPresetLow, BatteryPresetBalanced, BatteryPresetHigh:
		return true
	default:
		return false
	}
}

// CreatineIntake logs one taken dose; the reminder loop skips users who
// already logged an intake for the day.
type CreatineIntake struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;index:idx_intake_user_date" json:"-"`
	Date    time.Time `gorm:"type:date;not null;index:idx_intake_user_date" json:"date"`
	Grams   float64   `gorm:"not null" json:"grams"`
	TakenAt time.Time `gorm:"not null" json:"taken_at"`
}
