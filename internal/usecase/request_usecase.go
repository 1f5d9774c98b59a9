package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestUsecase defines the help request lifecycle.
type RequestUsecase interface {
	CreateRequest(ctx context.Context, elder *entity.User, input *CreateRequestInput) (*entity.Request, error)
	// UpdateStatus moves a request along the lifecycle on behalf of actorID and notifies the other party.
	UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, input *UpdateStatusInput) (*entity.Request, error)
	ListElderRequests(ctx context.Context, elderID uuid.UUID) ([]*entity.Request, error)
	ListVolunteerRequests(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Request, error)
}

// --- Input DTOs ---

// CreateRequestInput defines the data required to ask a volunteer for help.
type CreateRequestInput struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	ServiceID   int64     `json:"service_id" validate:"required,gt=0"`
	DayOfWeek   string    `json:"day_of_week" validate:"required"`
	TimeOfDay   string    `json:"time_of_day" validate:"required"`
	Details     string    `json:"details" validate:"max=2000"`
	Urgent      bool      `json:"urgent"`
}

// UpdateStatusInput carries the target status of a transition.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}
