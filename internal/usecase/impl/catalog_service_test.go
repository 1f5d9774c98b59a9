package impl

import (
	"context"
	"testing"

	"neighborly/internal/domain/entity"
	mockRepo "neighborly/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListServices(t *testing.T) {
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	svc := NewCatalogService(serviceRepo)

	ctx := context.Background()
	catalog := []*entity.Service{
		{ID: 1, Key: "transportation", Names: map[string]string{"en": "Transportation"}},
		{ID: 2, Key: "groceries", Names: map[string]string{"en": "Groceries"}},
	}

	serviceRepo.EXPECT().ListServices(ctx).Return(catalog, nil)

	got, err := svc.ListServices(ctx)

	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestCatalogService_ListServices_Error(t *testing.T) {
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	svc := NewCatalogService(serviceRepo)

	storeErr := errors.New("timeout")
	serviceRepo.EXPECT().ListServices(context.Background()).Return(nil, storeErr)

	_, err := svc.ListServices(context.Background())

	assert.True(t, errors.Is(err, storeErr))
}
