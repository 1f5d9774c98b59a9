package handler

import (
	"log/slog"

	"neighborly/internal/delivery/http/response"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler holds dependencies for help request handlers.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateRequest lets the calling elder ask a volunteer for help.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var input usecase.CreateRequestInput
	if err := bindAndValidate(c, &input, "Invalid request input"); err != nil {
		return err
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), user, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, request, "Request created successfully")
}

// UpdateStatus moves a request along its lifecycle.
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateStatusInput
	if err := bindAndValidate(c, &input, "Invalid status input"); err != nil {
		return err
	}

	request, err := h.requestUC.UpdateStatus(c.Request().Context(), user.ID, requestID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, request, "Request status updated successfully")
}

// ListElderRequests returns the requests the caller made as an elder.
func (h *RequestHandler) ListElderRequests(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListElderRequests(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests, "Requests retrieved successfully")
}

// ListVolunteerRequests returns the requests addressed to the caller as a volunteer.
func (h *RequestHandler) ListVolunteerRequests(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListVolunteerRequests(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, requests, "Requests retrieved successfully")
}
