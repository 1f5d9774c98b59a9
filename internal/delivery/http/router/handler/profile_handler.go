package handler

import (
	"log/slog"

	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for the caller's profile and matching preferences.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the current user.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "Profile retrieved successfully")
}

// UpdateProfile applies a partial profile update.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := bindAndValidate(c, &input, "Invalid profile input"); err != nil {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "Profile updated successfully")
}

// SwitchRole switches the caller between elder and volunteer mode.
func (h *ProfileHandler) SwitchRole(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.SwitchRoleInput
	if err := bindAndValidate(c, &input, "Invalid role input"); err != nil {
		return err
	}

	profile, err := h.profileUC.SwitchRole(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, profile, "Role updated successfully")
}

// GetServices returns the caller's selected services.
func (h *ProfileHandler) GetServices(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	services, err := h.profileUC.GetServices(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, services, "Services retrieved successfully")
}

// UpdateServices replaces the caller's selected services.
func (h *ProfileHandler) UpdateServices(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateServicesInput
	if err := bindAndValidate(c, &input, "Invalid services input"); err != nil {
		return err
	}

	services, err := h.profileUC.UpdateServices(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, services, "Services updated successfully")
}

// GetAvailability returns the caller's weekly availability grid.
func (h *ProfileHandler) GetAvailability(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	slots, err := h.profileUC.GetAvailability(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, slots, "Availability retrieved successfully")
}

// UpdateAvailability replaces the caller's weekly availability grid.
func (h *ProfileHandler) UpdateAvailability(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateAvailabilityInput
	if err := bindAndValidate(c, &input, "Invalid availability input"); err != nil {
		return err
	}

	slots, err := h.profileUC.UpdateAvailability(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, slots, "Availability updated successfully")
}

// SavePreferences stores services and availability in one step.
func (h *ProfileHandler) SavePreferences(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.SavePreferencesInput
	if err := bindAndValidate(c, &input, "Invalid preferences input"); err != nil {
		return err
	}

	output, err := h.profileUC.SavePreferences(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output, "Preferences saved successfully")
}
