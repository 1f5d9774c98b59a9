package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository persists the weekly availability grid.
type AvailabilityRepository interface {
	// FindSelectedSlots returns the user's selected slots in grid order.
	FindSelectedSlots(ctx context.Context, userID uuid.UUID) ([]entity.Slot, error)

	// ReplaceSlots deletes the user's slots and inserts slots as selected.
	// Callers run it inside a transaction so a failure leaves the prior grid intact.
	ReplaceSlots(ctx context.Context, userID uuid.UUID, slots []entity.Slot) error
}
