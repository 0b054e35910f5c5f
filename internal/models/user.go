package models

import "time"

type User struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	Email              string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string `gorm:"not null" json:"-"`
	DisplayName        string `json:"display_name,omitempty"`
	MustChangePassword bool   `gorm:"not null;default:false" json:"must_change_password"`
	// ServerURL mirrors the base URL the mobile client is configured
	// against, so a reinstalled client can recover it.
	ServerURL string    `json:"server_url,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
