package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile and preference operations of the caller.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	SwitchRole(ctx context.Context, userID uuid.UUID, input *SwitchRoleInput) (*entity.User, error)

	GetServices(ctx context.Context, userID uuid.UUID) ([]*entity.Service, error)
	UpdateServices(ctx context.Context, userID uuid.UUID, input *UpdateServicesInput) ([]*entity.Service, error)
	GetAvailability(ctx context.Context, userID uuid.UUID) ([]entity.Slot, error)
	UpdateAvailability(ctx context.Context, userID uuid.UUID, input *UpdateAvailabilityInput) ([]entity.Slot, error)
	// SavePreferences stores services and availability together; either both change or neither does.
	SavePreferences(ctx context.Context, userID uuid.UUID, input *SavePreferencesInput) (*PreferencesOutput, error)
}

// --- Input DTOs ---

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,max=50"`
	City      *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

// SwitchRoleInput selects the mode the user acts in.
type SwitchRoleInput struct {
	Role string `json:"role" validate:"required,oneof=elder volunteer"`
}

// UpdateServicesInput replaces the caller's service selections.
type UpdateServicesInput struct {
	ServiceIDs []int64 `json:"service_ids" validate:"dive,gt=0"`
}

// SlotInput is one cell of the weekly availability grid as sent by clients.
type SlotInput struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
	TimeOfDay string `json:"time_of_day" validate:"required"`
}

// UpdateAvailabilityInput replaces the caller's availability grid.
type UpdateAvailabilityInput struct {
	Availability []SlotInput `json:"availability" validate:"dive"`
}

// SavePreferencesInput carries both halves of the matching preferences.
type SavePreferencesInput struct {
	ServiceIDs   []int64     `json:"service_ids" validate:"dive,gt=0"`
	Availability []SlotInput `json:"availability" validate:"dive"`
}

// --- Output DTOs ---

// PreferencesOutput is the stored state after SavePreferences.
type PreferencesOutput struct {
	Services     []*entity.Service `json:"services"`
	Availability []entity.Slot     `json:"availability"`
}
