package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification does not exist or is not owned by the caller.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository persists inbox notifications.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindByID loads a single notification regardless of owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser returns the user's notifications newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// CountUnread returns how many of the user's notifications are unread.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags a single notification owned by userID as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flags every notification of the user as read and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
