package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a catalog entry does not exist.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository covers the service catalog and users' selections of it.
type ServiceRepository interface {
	// ListServices returns the whole catalog ordered by id.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// FindServiceByID retrieves a single catalog entry.
	FindServiceByID(ctx context.Context, id int64) (*entity.Service, error)

	// CountServicesByIDs returns how many of ids exist in the catalog.
	CountServicesByIDs(ctx context.Context, ids []int64) (int64, error)

	// FindSelectedServices returns the services the user has selected.
	FindSelectedServices(ctx context.Context, userID uuid.UUID) ([]*entity.Service, error)

	// ReplaceSelections makes ids the user's exact set of selected services.
	ReplaceSelections(ctx context.Context, userID uuid.UUID, ids []int64) error
}
