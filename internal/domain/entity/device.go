package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push token belongs to.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// IsValid checks if the DevicePlatform is a valid value.
func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID      `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken  string         `json:"fcm_token"`  // Firebase Cloud Messaging token for push notifications.
	DeviceID  string         `json:"device_id"`  // Unique device identifier from the client.
	Platform  DevicePlatform `json:"platform"`   // Device platform (ios, android, web).
	IsActive  bool           `json:"is_active"`  // Indicates if this device is active for notifications.
	CreatedAt time.Time      `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time      `json:"updated_at"` // Timestamp of the last modification.
}
