package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines review submission and the volunteer rating aggregate.
type ReviewUsecase interface {
	SubmitReview(ctx context.Context, reviewerID uuid.UUID, input *SubmitReviewInput) (*ReviewOutput, error)
	ListReviews(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Review, error)
}

// SubmitReviewInput defines the data required to review a volunteer.
type SubmitReviewInput struct {
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment" validate:"max=2000"`
}

// ReviewOutput is the stored review and the volunteer's recomputed aggregate.
type ReviewOutput struct {
	Review *entity.Review        `json:"review"`
	Stats  entity.VolunteerStats `json:"volunteer"`
}
