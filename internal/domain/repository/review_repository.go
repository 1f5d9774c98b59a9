package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository persists reviews of volunteers.
type ReviewRepository interface {
	// CreateReview persists a new review.
	CreateReview(ctx context.Context, review *entity.Review) error

	// FindRatingsByVolunteer returns every rating the volunteer has received.
	FindRatingsByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]int, error)

	// ListByVolunteer returns the volunteer's reviews newest first with the reviewer's name.
	ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Review, error)
}
