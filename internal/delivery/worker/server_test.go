package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neighborly/config"
	"neighborly/internal/delivery/worker/handler"
	"neighborly/internal/domain/entity"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func newTestWorkerEcho(t *testing.T, db Pinger) (*echo.Echo, *mockUsecase.MockPushUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	pushUC := mockUsecase.NewMockPushUsecase(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, PushUC: pushUC})

	return newEcho(cfg, logger, pushHandler, db), pushUC
}

func TestWorkerServer_Health(t *testing.T) {
	e, _ := newTestWorkerEcho(t, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestWorkerServer_Ready(t *testing.T) {
	tests := []struct {
		name string
		db   Pinger
		want int
	}{
		{name: "no store configured", want: http.StatusOK},
		{name: "store reachable", db: fakePinger{}, want: http.StatusOK},
		{name: "store down", db: fakePinger{err: errors.New("connection refused")}, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestWorkerEcho(t, tt.db)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWorkerServer_Push(t *testing.T) {
	e, pushUC := newTestWorkerEcho(t, nil)
	event := &entity.RequestStatusChanged{RequestID: uuid.New(), NotificationID: uuid.New(), To: entity.RequestStatusRejected}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString(data) + `","messageId":"42"},"subscription":"s"}`

	pushUC.EXPECT().DeliverStatusChange(mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
