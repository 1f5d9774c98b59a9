package handler

import (
	"net/http"

	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VolunteerHandler serves volunteer discovery, including the matching engine.
type VolunteerHandler struct {
	matchUC usecase.MatchUsecase
}

// NewVolunteerHandler is the constructor for VolunteerHandler
func NewVolunteerHandler(matchUC usecase.MatchUsecase) *VolunteerHandler {
	return &VolunteerHandler{matchUC: matchUC}
}

// MatchVolunteers returns the volunteers matching the calling elder's preferences.
func (h *VolunteerHandler) MatchVolunteers(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	volunteers, err := h.matchUC.MatchVolunteers(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, volunteers, "Matching volunteers retrieved successfully")
}

// ListVolunteers returns every volunteer offering at least one service.
func (h *VolunteerHandler) ListVolunteers(c echo.Context) error {
	volunteers, err := h.matchUC.ListVolunteers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, volunteers, "Volunteers retrieved successfully")
}

// GetVolunteer returns one volunteer with their reviews.
func (h *VolunteerHandler) GetVolunteer(c echo.Context) error {
	volunteerID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.matchUC.GetVolunteer(c.Request().Context(), volunteerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "Volunteer retrieved successfully")
}

// GetVolunteerQRCode streams a PNG QR code linking to the volunteer's profile.
func (h *VolunteerHandler) GetVolunteerQRCode(c echo.Context) error {
	volunteerID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.matchUC.GetVolunteerQRCode(c.Request().Context(), volunteerID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanProfile resolves the content of a scanned share QR code to a volunteer profile.
func (h *VolunteerHandler) ScanProfile(c echo.Context) error {
	var input usecase.ScanProfileInput
	if err := bindAndValidate(c, &input, "Invalid scan input"); err != nil {
		return err
	}

	profile, err := h.matchUC.ResolveProfileLink(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "Volunteer retrieved successfully")
}
