// Package handler contains the HTTP handlers for the application.
package handler

import (
	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return user, nil
}

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// bindAndValidate decodes the body into input and runs its validate tags.
func bindAndValidate(c echo.Context, input any, bindingMessage string) error {
	if err := c.Bind(input); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(bindingMessage))
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
