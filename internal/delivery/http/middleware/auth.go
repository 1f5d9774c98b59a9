package middleware

import (
	"strings"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication and role checks.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate resolves the bearer token to the current user and stores it on the context.
// The user row is re-read on every request, so role switches take effect immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}
		token := strings.TrimSpace(authHeader[len(bearerPrefix):])

		user, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUnauthorized) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole only lets through users currently acting in the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			if user.Role != requiredRole {
				return errors.WithStack(domainerrors.ErrRoleRequired)
			}

			return next(c)
		}
	}
}
