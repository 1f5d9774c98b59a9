package handler

import (
	"log/slog"

	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDevice registers or refreshes a push token for the caller.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.DeviceInfo
	if err := bindAndValidate(c, &input, "Invalid device input"); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, device, "Device registered successfully")
}

// RemoveDevice unregisters one of the caller's devices.
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), user.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Device removed successfully")
}
