package handler

import (
	"net/http"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	mockUsecase "neighborly/internal/mocks/usecase"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		uc := mockUsecase.NewMockDeviceUsecase(t)
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc})
		user := newTestUser(entity.RoleVolunteer)

		uc.EXPECT().
			RegisterDevice(mock.Anything, user.ID, &usecase.DeviceInfo{FCMToken: "token-1", DeviceID: "pixel-8", Platform: entity.PlatformAndroid}).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: user.ID, FCMToken: "token-1", Platform: entity.PlatformAndroid, IsActive: true}, nil)

		rec := perform(t, http.MethodPost, "/api/devices", "/api/devices",
			`{"fcm_token":"token-1","device_id":"pixel-8","platform":"android"}`, user, h.RegisterDevice)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decodeData[entity.UserDevice](t, decodeEnvelope(t, rec))
		assert.True(t, got.IsActive)
	})

	t.Run("unknown platform", func(t *testing.T) {
		h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t)})

		rec := perform(t, http.MethodPost, "/api/devices", "/api/devices",
			`{"fcm_token":"token-1","device_id":"pc","platform":"windows"}`, newTestUser(entity.RoleVolunteer), h.RegisterDevice)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "platform")
	})
}

func TestDeviceHandler_RemoveDevice(t *testing.T) {
	uc := mockUsecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc})
	user := newTestUser(entity.RoleVolunteer)
	id := uuid.New()

	uc.EXPECT().RemoveDevice(mock.Anything, user.ID, id).Return(domainerrors.ErrDeviceNotFound)

	rec := perform(t, http.MethodDelete, "/api/devices/:id", "/api/devices/"+id.String(), "", user, h.RemoveDevice)

	requireErrorCode(t, rec, http.StatusNotFound, "DEVICE_NOT_FOUND")
}
