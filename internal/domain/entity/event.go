package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatusChanged is published after a status transition has been committed.
type RequestStatusChanged struct {
	RequestID uuid.UUID `json:"request_id"`
	// NotificationID is the inbox row written for the counterparty in the same transaction.
	NotificationID uuid.UUID     `json:"notification_id"`
	ElderID        uuid.UUID     `json:"elder_id"`
	VolunteerID    uuid.UUID     `json:"volunteer_id"`
	ActorID        uuid.UUID     `json:"actor_id"`
	From           RequestStatus `json:"from"`
	To             RequestStatus `json:"to"`
	OccurredAt     time.Time     `json:"occurred_at"`
	TraceID        string        `json:"trace_id,omitempty"` // Inbound HTTP request id, for correlation.
}
