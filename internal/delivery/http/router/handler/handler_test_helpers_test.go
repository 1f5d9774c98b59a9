package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/delivery/http/middleware"
	"neighborly/internal/delivery/http/response"
	"neighborly/internal/delivery/http/validator"
	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// envelope mirrors response.Response but keeps data raw for per-test decoding.
type envelope struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Error   *response.ErrorInfo `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func newTestUser(role entity.Role) *entity.User {
	return &entity.User{ID: uuid.New(), Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Role: role}
}

// asUser stands in for the auth middleware.
func asUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user != nil {
				deliverycontext.SetUser(c, user)
			}

			return next(c)
		}
	}
}

// perform routes a single request through route -> h and returns the recorded response.
func perform(t *testing.T, method, route, target, body string, user *entity.User, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	e.Add(method, route, h, asUser(user))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))

	return data
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env
}
