package handler

import (
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite handlers.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(favoriteUC usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC}
}

// AddFavorite bookmarks a volunteer. Adding an existing favorite succeeds.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	volunteerID, err := uuidParam(c, "volunteerId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.favoriteUC.AddFavorite(c.Request().Context(), user.ID, volunteerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]string{"volunteer_id": volunteerID.String()}, "Favorite added successfully")
}

// RemoveFavorite removes a bookmark. Removing a missing favorite succeeds.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	volunteerID, err := uuidParam(c, "volunteerId")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), user.ID, volunteerID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Favorite removed successfully")
}

// ListFavorites returns the caller's bookmarked volunteers.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, favorites, "Favorites retrieved successfully")
}
