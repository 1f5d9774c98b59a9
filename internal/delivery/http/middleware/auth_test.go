package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serveProtected runs one request through Authenticate (and optional extra middleware) into a handler
// that echoes the resolved user ID.
func serveProtected(t *testing.T, m *AuthMiddleware, authHeader string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	chain := append([]echo.MiddlewareFunc{m.Authenticate}, extra...)
	e.GET("/protected", func(c echo.Context) error {
		user, ok := deliverycontext.GetUser(c)
		require.True(t, ok)

		return response.OK(c, map[string]string{"user_id": user.ID.String()}, "")
	}, chain...)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("resolves the bearer token", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleElder}
		userUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(user, nil)

		rec := serveProtected(t, NewAuthMiddleware(userUC), "Bearer good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), user.ID.String())
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		userUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(&entity.User{ID: uuid.New()}, nil)

		rec := serveProtected(t, NewAuthMiddleware(userUC), "bearer good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	rejected := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)

			rec := serveProtected(t, NewAuthMiddleware(userUC), tt.header)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
		})
	}

	t.Run("expired or unknown token", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		userUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthorized.WrapMessage("token is expired"))

		rec := serveProtected(t, NewAuthMiddleware(userUC), "Bearer stale")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "token is expired")
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		userUC := mockUsecase.NewMockUserUsecase(t)
		userUC.EXPECT().Authenticate(mock.Anything, "good-token").Return(nil, errors.New("connection refused"))

		rec := serveProtected(t, NewAuthMiddleware(userUC), "Bearer good-token")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		wantStatus int
	}{
		{name: "elder passes", role: entity.RoleElder, wantStatus: http.StatusOK},
		{name: "volunteer is refused", role: entity.RoleVolunteer, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userUC := mockUsecase.NewMockUserUsecase(t)
			userUC.EXPECT().Authenticate(mock.Anything, "token").Return(&entity.User{ID: uuid.New(), Role: tt.role}, nil)
			m := NewAuthMiddleware(userUC)

			rec := serveProtected(t, m, "Bearer token", m.RequireRole(entity.RoleElder))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, "ROLE_REQUIRED", errorCode(t, rec))
			}
		})
	}
}
