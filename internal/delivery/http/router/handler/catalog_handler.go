package handler

import (
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the service catalog.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListServices returns every service a volunteer can offer.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, services, "Services retrieved successfully")
}
