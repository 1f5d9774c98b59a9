package usecase

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages an elder's bookmarked volunteers.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error
	RemoveFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error
	ListFavorites(ctx context.Context, elderID uuid.UUID) ([]*entity.User, error)
}
