// Package repository declares the persistence ports the use cases depend on.
// Implementations translate driver errors into the sentinels declared here.
package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound means no device with that id belongs to the caller.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores push tokens per user device.
type DeviceRepository interface {
	// UpsertDevice registers the device or refreshes its token, platform and active flag
	// when the same user already registered the same device id.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser lists the devices a push to userID should reach, newest first.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeleteDevice returns ErrDeviceNotFound when id is unknown or owned by someone else.
	DeleteDevice(ctx context.Context, id, userID uuid.UUID) error

	// DeleteByFCMTokens removes devices whose tokens the push provider reported as invalid.
	DeleteByFCMTokens(ctx context.Context, tokens []string) error
}
