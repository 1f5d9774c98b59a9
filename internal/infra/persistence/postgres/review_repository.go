package postgres

import (
	"context"
	"time"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateReview persists a new review.
func (repo *reviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:          review.ID,
		ElderID:     review.ElderID,
		VolunteerID: review.VolunteerID,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVolunteerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindRatingsByVolunteer returns every rating the volunteer has received.
func (repo *reviewRepository) FindRatingsByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]int, error) {
	ratings := make([]int, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("volunteer_id = ?", volunteerID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load ratings")
	}

	return ratings, nil
}

// reviewRow is a review joined with the reviewer's name.
type reviewRow struct {
	ID                uuid.UUID `gorm:"column:id"`
	ElderID           uuid.UUID `gorm:"column:elder_id"`
	VolunteerID       uuid.UUID `gorm:"column:volunteer_id"`
	Rating            int       `gorm:"column:rating"`
	Comment           string    `gorm:"column:comment"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	ReviewerFirstName string    `gorm:"column:reviewer_first_name"`
	ReviewerLastName  string    `gorm:"column:reviewer_last_name"`
}

// ListByVolunteer returns the volunteer's reviews newest first with the reviewer's name.
func (repo *reviewRepository) ListByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Review, error) {
	var rows []*reviewRow

	if err := repo.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.elder_id, reviews.volunteer_id, reviews.rating, reviews.comment, reviews.created_at, "+
			"reviewer.first_name AS reviewer_first_name, reviewer.last_name AS reviewer_last_name").
		Joins("LEFT JOIN users AS reviewer ON reviewer.id = reviews.elder_id").
		Where("reviews.volunteer_id = ?", volunteerID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviewer := entity.User{FirstName: row.ReviewerFirstName, LastName: row.ReviewerLastName}
		reviews = append(reviews, &entity.Review{
			ID:           row.ID,
			ElderID:      row.ElderID,
			VolunteerID:  row.VolunteerID,
			Rating:       row.Rating,
			Comment:      row.Comment,
			CreatedAt:    row.CreatedAt,
			ReviewerName: reviewer.FullName(),
		})
	}

	return reviews, nil
}
