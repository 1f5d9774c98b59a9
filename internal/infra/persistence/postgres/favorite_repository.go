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
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// AddFavorite inserts the pair, doing nothing if it already exists.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		ElderID:     favorite.ElderID,
		VolunteerID: favorite.VolunteerID,
		CreatedAt:   favorite.CreatedAt,
	}
	if favoriteM.CreatedAt.IsZero() {
		favoriteM.CreatedAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "elder_id"}, {Name: "volunteer_id"}},
			DoNothing: true,
		}).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrVolunteerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite deletes the pair. Removing a missing pair is not an error.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("elder_id = ? AND volunteer_id = ?", elderID, volunteerID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove favorite")
	}

	return nil
}

// ListFavoriteVolunteers returns the elder's bookmarked users, most recently added first.
func (repo *favoriteRepository) ListFavoriteVolunteers(ctx context.Context, elderID uuid.UUID) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN favorites ON favorites.volunteer_id = users.id").
		Where("favorites.elder_id = ?", elderID).
		Order("favorites.created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}
