package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository persists elders' bookmarked volunteers.
type FavoriteRepository interface {
	// AddFavorite inserts the pair, doing nothing if it already exists.
	AddFavorite(ctx context.Context, favorite *entity.Favorite) error

	// RemoveFavorite deletes the pair. Removing a missing pair is not an error.
	RemoveFavorite(ctx context.Context, elderID, volunteerID uuid.UUID) error

	// ListFavoriteVolunteers returns the elder's bookmarked users, most recently added first.
	ListFavoriteVolunteers(ctx context.Context, elderID uuid.UUID) ([]*entity.User, error)
}
