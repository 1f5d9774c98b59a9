package impl

import (
	"context"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, userRepo repository.UserRepository) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

// AddFavorite bookmarks a volunteer. Adding an existing favorite is a no-op.
func (s *favoriteService) AddFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error {
	if elderID == volunteerID {
		return domainerrors.ErrValidationFailed.WrapMessage("you cannot favorite yourself")
	}

	volunteer, err := s.userRepo.FindByID(ctx, volunteerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrVolunteerNotFound.WrapMessage("volunteer not found")
		}

		return errors.Wrap(err, "failed to find volunteer")
	}
	if !volunteer.IsVolunteer() {
		return domainerrors.ErrVolunteerNotFound.WrapMessage("user is not currently a volunteer")
	}

	if err := s.favoriteRepo.AddFavorite(ctx, &entity.Favorite{ElderID: elderID, VolunteerID: volunteerID}); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite drops a bookmark. Removing a missing favorite is not an error.
func (s *favoriteService) RemoveFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error {
	if err := s.favoriteRepo.RemoveFavorite(ctx, elderID, volunteerID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites returns the bookmarked volunteers of the elder.
func (s *favoriteService) ListFavorites(ctx context.Context, elderID uuid.UUID) ([]*entity.User, error) {
	users, err := s.favoriteRepo.ListFavoriteVolunteers(ctx, elderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return users, nil
}
