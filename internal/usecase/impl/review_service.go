package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview stores a review and recomputes the volunteer's rating from every review they have.
// Both writes commit together, so the stored aggregate always reflects the stored reviews.
func (srv *reviewService) SubmitReview(ctx context.Context, reviewerID uuid.UUID, input *usecase.SubmitReviewInput) (*usecase.ReviewOutput, error) {
	if !entity.IsValidRating(input.Rating) {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRating, "rating %d out of range", input.Rating)
	}
	if input.VolunteerID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("volunteer_id is required")
	}
	if input.VolunteerID == reviewerID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("you cannot review yourself")
	}

	review := &entity.Review{
		ElderID:     reviewerID,
		VolunteerID: input.VolunteerID,
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
	}

	var stats entity.VolunteerStats
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		volunteer, err := userRepo.FindByID(ctx, input.VolunteerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrVolunteerNotFound.WrapMessage("volunteer not found")
			}

			return errors.Wrap(err, "failed to find volunteer")
		}
		if !volunteer.IsVolunteer() {
			return domainerrors.ErrVolunteerNotFound.WrapMessage("user is not currently a volunteer")
		}

		if err := reviewRepo.CreateReview(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		ratings, err := reviewRepo.FindRatingsByVolunteer(ctx, input.VolunteerID)
		if err != nil {
			return errors.Wrap(err, "failed to load volunteer ratings")
		}

		stats = entity.AggregateRatings(ratings)

		return errors.Wrap(
			userRepo.UpdateVolunteerStats(ctx, input.VolunteerID, stats),
			"failed to update volunteer rating",
		)
	})
	if err != nil {
		srv.log(ctx).Warn("Review submission failed",
			slog.Any("reviewerID", reviewerID),
			slog.Any("volunteerID", input.VolunteerID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute review transaction")
	}

	srv.log(ctx).Info("Review submitted",
		slog.Any("reviewID", review.ID),
		slog.Any("volunteerID", input.VolunteerID),
		slog.Int("reviewCount", stats.ReviewCount),
	)

	return &usecase.ReviewOutput{
		Review: review,
		Stats:  stats,
	}, nil
}

// ListReviews returns a volunteer's reviews newest first.
func (srv *reviewService) ListReviews(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
