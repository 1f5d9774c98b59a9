package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps 'user_devices': one push token per (user, client device).
// Rows are deleted when the push provider rejects the token.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;index:idx_user_devices_fcm_token"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform  string    `gorm:"type:varchar(16);not null;check:chk_user_devices_platform,platform IN ('ios','android','web')"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// BeforeSave keeps stored platforms lowercase so the check constraint and lookups agree.
func (m *UserDeviceModel) BeforeSave(_ *gorm.DB) error {
	m.Platform = strings.ToLower(strings.TrimSpace(m.Platform))
	m.FCMToken = strings.TrimSpace(m.FCMToken)
	m.DeviceID = strings.TrimSpace(m.DeviceID)

	return nil
}
