package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase serves the caller's in-app inbox.
// Every operation is scoped to userID; another user's notification reads as not found.
type NotificationUsecase interface {
	// ListNotifications returns the inbox newest first.
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	// MarkAllRead returns how many notifications changed state.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
