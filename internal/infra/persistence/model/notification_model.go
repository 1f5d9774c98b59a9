package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel maps 'notifications', the in-app inbox.
// The (user_id, is_read) index serves the unread badge; listing sorts on created_at.
type NotificationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`
	Type      string     `gorm:"type:varchar(50);not null"`
	Message   string     `gorm:"type:text;not null"`
	RequestID *uuid.UUID `gorm:"type:uuid;index"`
	IsRead    bool       `gorm:"not null;default:false;index:idx_notifications_user_unread,priority:2"`
	CreatedAt time.Time  `gorm:"not null;index:idx_notifications_user_created,priority:2,sort:desc"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
