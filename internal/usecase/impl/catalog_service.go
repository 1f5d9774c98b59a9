package impl

import (
	"context"

	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/repository"
	"neighborly/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(serviceRepo repository.ServiceRepository) usecase.CatalogUsecase {
	return &catalogService{
		serviceRepo: serviceRepo,
	}
}

// ListServices returns the full service catalog.
func (s *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}
