package usecase

import (
	"context"

	"neighborly/internal/domain/entity"
)

// PushUsecase delivers device pushes for request events consumed from the broker
type PushUsecase interface {
	// DeliverStatusChange pushes the inbox notification carried by the event to the recipient's devices
	DeliverStatusChange(ctx context.Context, event *entity.RequestStatusChanged) error
}
