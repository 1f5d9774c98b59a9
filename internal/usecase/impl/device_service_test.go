package impl

import (
	"context"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	mockRepo "neighborly/internal/mocks/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: " fcm-token-123 ",
		DeviceID: "device-123",
		Platform: "IOS",
	}

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(ctx context.Context, device *entity.UserDevice) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, device.ID)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-123", device.FCMToken)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device",
		Platform: "symbian",
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestDeviceService_RegisterDevice_RepoError(t *testing.T) {
	fx := createTestDeviceService(t)
	repoErr := errors.New("database error")

	fx.deviceRepo.EXPECT().UpsertDevice(mock.Anything, mock.Anything).Return(repoErr)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token",
		DeviceID: "device",
		Platform: entity.PlatformAndroid,
	})

	assert.Nil(t, device)
	assert.True(t, errors.Is(err, repoErr))
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	t.Run("owned device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		userID, deviceID := uuid.New(), uuid.New()

		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID, userID).Return(nil)

		assert.NoError(t, fx.service.RemoveDevice(context.Background(), userID, deviceID))
	})

	t.Run("missing or foreign device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		userID, deviceID := uuid.New(), uuid.New()

		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID, userID).Return(repository.ErrDeviceNotFound)

		err := fx.service.RemoveDevice(context.Background(), userID, deviceID)

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}
