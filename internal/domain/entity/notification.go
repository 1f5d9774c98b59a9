package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an inbox notification by the transition that produced it.
type NotificationType string

const (
	NotificationRequestAccepted  NotificationType = "request_accepted"
	NotificationRequestRejected  NotificationType = "request_rejected"
	NotificationRequestCanceled  NotificationType = "request_canceled"
	NotificationRequestCompleted NotificationType = "request_completed"
)

// NotificationTypeFor returns the notification type emitted when a request enters status.
func NotificationTypeFor(status RequestStatus) (NotificationType, bool) {
	switch status {
	case RequestStatusAccepted:
		return NotificationRequestAccepted, true
	case RequestStatusRejected:
		return NotificationRequestRejected, true
	case RequestStatusCanceled:
		return NotificationRequestCanceled, true
	case RequestStatusCompleted:
		return NotificationRequestCompleted, true
	default:
		return "", false
	}
}

// Notification is an inbox entry derived from a request status transition.
type Notification struct {
	ID        uuid.UUID        `json:"id"`                   // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`              // The recipient.
	Type      NotificationType `json:"type"`                 // What happened.
	Message   string           `json:"message"`              // Rendered text shown in the inbox.
	RequestID *uuid.UUID       `json:"request_id,omitempty"` // The request the notification is about.
	IsRead    bool             `json:"is_read"`              // The only field the recipient may change.
	CreatedAt time.Time        `json:"created_at"`           // Timestamp of when the notification was created.
}

// StatusMessage renders the inbox text for a request entering status.
// actorName is the display name of the party that made the change.
func StatusMessage(status RequestStatus, actorName string) string {
	switch status {
	case RequestStatusAccepted:
		return fmt.Sprintf("Your request has been accepted by %s.", actorName)
	case RequestStatusRejected:
		return fmt.Sprintf("Your request was declined by %s.", actorName)
	case RequestStatusCanceled:
		return fmt.Sprintf("The request was canceled by %s.", actorName)
	case RequestStatusCompleted:
		return fmt.Sprintf("%s marked the request as completed. Thank you for helping!", actorName)
	default:
		return fmt.Sprintf("The request status changed to %s.", status)
	}
}
