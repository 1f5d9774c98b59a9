package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase manages the caller's push-enabled devices.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (user, device id): a second call refreshes the token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}

// DeviceInfo is the registration body. DeviceID is the client's own stable identifier.
type DeviceInfo struct {
	FCMToken string                `json:"fcm_token" validate:"required"`
	DeviceID string                `json:"device_id" validate:"required"`
	Platform entity.DevicePlatform `json:"platform" validate:"required,oneof=ios android web"`
}
