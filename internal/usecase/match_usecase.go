package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchUsecase defines the read side over volunteers, including the matching engine.
type MatchUsecase interface {
	// MatchVolunteers returns the volunteers that satisfy every stored preference of the elder.
	// An elder with incomplete preferences gets an empty list, not an error.
	MatchVolunteers(ctx context.Context, elderID uuid.UUID) ([]*entity.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]*entity.Volunteer, error)
	GetVolunteer(ctx context.Context, volunteerID uuid.UUID) (*VolunteerProfile, error)
	// GetVolunteerQRCode returns a PNG QR code linking to the volunteer's public profile.
	GetVolunteerQRCode(ctx context.Context, volunteerID uuid.UUID) ([]byte, error)
	// ResolveProfileLink turns a scanned share link back into the volunteer profile.
	ResolveProfileLink(ctx context.Context, input *ScanProfileInput) (*VolunteerProfile, error)
}

// ScanProfileInput carries the content of a scanned share QR code.
type ScanProfileInput struct {
	Link string `json:"link" validate:"required,max=2048"`
}

// VolunteerProfile is a volunteer together with the reviews they received.
type VolunteerProfile struct {
	*entity.Volunteer
	ProfileURL string           `json:"profile_url,omitempty"`
	Reviews    []*entity.Review `json:"reviews"`
}
