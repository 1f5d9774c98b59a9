package usecase

import (
	"context"

	"neighborly/internal/domain/entity"
)

// CatalogUsecase exposes the fixed catalog of services.
type CatalogUsecase interface {
	ListServices(ctx context.Context) ([]*entity.Service, error)
}
