package service

import (
	"context"

	"neighborly/internal/domain/entity"
)

// EventPublisher announces committed request lifecycle changes to the configured broker.
// Publishing is best effort: the transition is already durable when it is called.
type EventPublisher interface {
	PublishRequestStatusChanged(ctx context.Context, event *entity.RequestStatusChanged) error

	// Close flushes pending messages and releases the broker connection.
	Close() error
}
