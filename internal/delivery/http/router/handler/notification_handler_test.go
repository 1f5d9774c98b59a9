package handler

import (
	"net/http"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListAndCount(t *testing.T) {
	uc := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(uc)
	user := newTestUser(entity.RoleElder)
	requestID := uuid.New()

	uc.EXPECT().ListNotifications(mock.Anything, user.ID).Return([]*entity.Notification{
		{ID: uuid.New(), UserID: user.ID, Type: entity.NotificationRequestAccepted, Message: "Grace Hopper accepted your request", RequestID: &requestID},
	}, nil)
	uc.EXPECT().UnreadCount(mock.Anything, user.ID).Return(int64(1), nil)

	rec := perform(t, http.MethodGet, "/api/notifications", "/api/notifications", "", user, h.ListNotifications)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[[]entity.Notification](t, decodeEnvelope(t, rec))
	require.Len(t, got, 1)
	assert.Equal(t, entity.NotificationRequestAccepted, got[0].Type)

	rec = perform(t, http.MethodGet, "/api/notifications/unread-count", "/api/notifications/unread-count", "", user, h.UnreadCount)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"unread":1}`, string(decodeEnvelope(t, rec).Data))
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	t.Run("someone else's notification", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		h := NewNotificationHandler(uc)
		user := newTestUser(entity.RoleElder)
		id := uuid.New()

		uc.EXPECT().MarkRead(mock.Anything, user.ID, id).Return(domainerrors.ErrNotificationNotFound)

		rec := perform(t, http.MethodPatch, "/api/notifications/:id/read", "/api/notifications/"+id.String()+"/read", "", user, h.MarkRead)

		requireErrorCode(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
	})

	t.Run("all", func(t *testing.T) {
		uc := mockUsecase.NewMockNotificationUsecase(t)
		h := NewNotificationHandler(uc)
		user := newTestUser(entity.RoleElder)

		uc.EXPECT().MarkAllRead(mock.Anything, user.ID).Return(int64(3), nil)

		rec := perform(t, http.MethodPatch, "/api/notifications/read-all", "/api/notifications/read-all", "", user, h.MarkAllRead)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"updated":3}`, string(decodeEnvelope(t, rec).Data))
	})
}
