package impl

import (
	"context"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	mockRepo "neighborly/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListAndCount(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)

	ctx := context.Background()
	userID := uuid.New()
	inbox := []*entity.Notification{{ID: uuid.New(), UserID: userID, Type: entity.NotificationRequestAccepted}}

	notificationRepo.EXPECT().ListByUser(ctx, userID).Return(inbox, nil)
	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(1), nil)

	got, err := svc.ListNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, inbox, got)

	count, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("owned notification", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		svc := NewNotificationService(notificationRepo)
		userID, id := uuid.New(), uuid.New()

		notificationRepo.EXPECT().MarkRead(mock.Anything, id, userID).Return(nil)

		assert.NoError(t, svc.MarkRead(context.Background(), userID, id))
	})

	t.Run("someone else's notification", func(t *testing.T) {
		notificationRepo := mockRepo.NewMockNotificationRepository(t)
		svc := NewNotificationService(notificationRepo)
		userID, id := uuid.New(), uuid.New()

		notificationRepo.EXPECT().MarkRead(mock.Anything, id, userID).Return(repository.ErrNotificationNotFound)

		err := svc.MarkRead(context.Background(), userID, id)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(3), nil)

	updated, err := svc.MarkAllRead(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
