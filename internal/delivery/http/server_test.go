package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neighborly/config"
	deliverycontext "neighborly/internal/delivery/context"
	httpmiddleware "neighborly/internal/delivery/http/middleware"
	"neighborly/internal/delivery/http/router"
	"neighborly/internal/delivery/http/router/handler"
	"neighborly/internal/domain/entity"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	echo      *echo.Echo
	userUC    *mockUsecase.MockUserUsecase
	matchUC   *mockUsecase.MockMatchUsecase
	requestUC *mockUsecase.MockRequestUsecase
}

func newTestApp(t *testing.T) testApp {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	app := testApp{
		userUC:    mockUsecase.NewMockUserUsecase(t),
		matchUC:   mockUsecase.NewMockMatchUsecase(t),
		requestUC: mockUsecase.NewMockRequestUsecase(t),
	}

	app.echo = newEcho(cfg, logger, httpmiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		UserHandler:         handler.NewUserHandler(app.userUC, logger),
		CatalogHandler:      handler.NewCatalogHandler(mockUsecase.NewMockCatalogUsecase(t)),
		ProfileHandler:      handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: logger}),
		VolunteerHandler:    handler.NewVolunteerHandler(app.matchUC),
		RequestHandler:      handler.NewRequestHandler(handler.RequestHandlerParams{RequestUC: app.requestUC, Logger: logger}),
		ReviewHandler:       handler.NewReviewHandler(mockUsecase.NewMockReviewUsecase(t)),
		FavoriteHandler:     handler.NewFavoriteHandler(mockUsecase.NewMockFavoriteUsecase(t)),
		NotificationHandler: handler.NewNotificationHandler(mockUsecase.NewMockNotificationUsecase(t)),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware:      httpmiddleware.NewAuthMiddleware(app.userUC),
	}).RegisterRoutes(app.echo)

	return app
}

func (a testApp) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ProtectedRoutesNeedToken(t *testing.T) {
	app := newTestApp(t)

	for _, target := range []string{"/api/services", "/api/user/profile", "/api/volunteers/match", "/api/notifications"} {
		rec := app.do(http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestServer_ElderOnlyRoutes(t *testing.T) {
	t.Run("volunteer cannot match or create requests", func(t *testing.T) {
		app := newTestApp(t)
		volunteer := &entity.User{ID: uuid.New(), Role: entity.RoleVolunteer}
		app.userUC.EXPECT().Authenticate(mock.Anything, "volunteer-token").Return(volunteer, nil)

		rec := app.do(http.MethodGet, "/api/volunteers/match", "volunteer-token", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ROLE_REQUIRED")

		rec = app.do(http.MethodPost, "/api/requests/new", "volunteer-token",
			`{"volunteer_id":"`+uuid.NewString()+`","service_id":1,"day_of_week":"monday","time_of_day":"morning"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("elder reaches the matching engine", func(t *testing.T) {
		app := newTestApp(t)
		elder := &entity.User{ID: uuid.New(), Role: entity.RoleElder}
		app.userUC.EXPECT().Authenticate(mock.Anything, "elder-token").Return(elder, nil)
		app.matchUC.EXPECT().MatchVolunteers(mock.Anything, elder.ID).Return([]*entity.Volunteer{}, nil)

		rec := app.do(http.MethodGet, "/api/volunteers/match", "elder-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_VolunteerByIDDoesNotShadowMatch(t *testing.T) {
	app := newTestApp(t)
	user := &entity.User{ID: uuid.New(), Role: entity.RoleElder}
	volunteerID := uuid.New()
	app.userUC.EXPECT().Authenticate(mock.Anything, "token").Return(user, nil)
	app.matchUC.EXPECT().GetVolunteerQRCode(mock.Anything, volunteerID).Return([]byte("png"), nil)

	rec := app.do(http.MethodGet, "/api/volunteers/"+volunteerID.String()+"/qrcode", "token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestServer_BodyLimit(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/auth/login", "", `{"email":"`+strings.Repeat("a", 2048)+`@example.com","password":"x"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
