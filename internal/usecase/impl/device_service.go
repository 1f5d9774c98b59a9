package impl

import (
	"context"
	"strings"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	platform := entity.DevicePlatform(strings.ToLower(strings.TrimSpace(string(deviceInfo.Platform))))
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios, android or web")
	}

	token := strings.TrimSpace(deviceInfo.FCMToken)
	deviceID := strings.TrimSpace(deviceInfo.DeviceID)
	if token == "" || deviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm_token and device_id are required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: deviceID,
		Platform: platform,
		IsActive: true,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// RemoveDevice deletes a device owned by the user
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.deviceRepo.DeleteDevice(ctx, deviceID, userID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
