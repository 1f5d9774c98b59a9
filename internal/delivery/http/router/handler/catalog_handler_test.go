package handler

import (
	"net/http"
	"testing"

	"neighborly/internal/domain/entity"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListServices(mock.Anything).Return([]*entity.Service{
			{ID: 1, Key: "groceries", Names: map[string]string{"en": "Groceries"}},
		}, nil)

		rec := perform(t, http.MethodGet, "/api/services", "/api/services", "", newTestUser(entity.RoleElder), h.ListServices)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[[]entity.Service](t, decodeEnvelope(t, rec))
		require.Len(t, got, 1)
		assert.Equal(t, "Groceries", got[0].Names["en"])
	})

	t.Run("store failure is an opaque 500", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCatalogHandler(uc)

		uc.EXPECT().ListServices(mock.Anything).Return(nil, errors.New("pq: relation \"services\" does not exist"))

		rec := perform(t, http.MethodGet, "/api/services", "/api/services", "", newTestUser(entity.RoleElder), h.ListServices)

		requireErrorCode(t, rec, http.StatusInternalServerError, "INTERNAL_ERROR")
		assert.NotContains(t, rec.Body.String(), "relation")
	})
}

func TestHealthCheck(t *testing.T) {
	rec := perform(t, http.MethodGet, "/health", "/health", "", nil, HealthCheck)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
