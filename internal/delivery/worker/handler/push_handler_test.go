package handler

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
	deliverycontext "neighborly/internal/delivery/context"
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

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockPushUsecase) {
	pushUC := mockUsecase.NewMockPushUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushUC: pushUC,
	}), pushUC
}

func pushBody(t *testing.T, event *entity.RequestStatusChanged, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/request-status-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &entity.RequestStatusChanged{
		RequestID:      uuid.New(),
		NotificationID: uuid.New(),
		To:             entity.RequestStatusAccepted,
		TraceID:        "payload-trace",
	}

	t.Run("delivers and acknowledges", func(t *testing.T) {
		h, pushUC := newTestPushHandler(t, nil)

		pushUC.EXPECT().
			DeliverStatusChange(mock.MatchedBy(func(ctx context.Context) bool {
				return deliverycontext.GetRequestIDFromContext(ctx) == "attr-trace"
			}), mock.MatchedBy(func(e *entity.RequestStatusChanged) bool {
				return e.NotificationID == event.NotificationID
			})).
			Return(nil)

		rec := servePush(h, pushBody(t, event, map[string]string{"trace_id": "attr-trace"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, pushUC := newTestPushHandler(t, nil)

		pushUC.EXPECT().DeliverStatusChange(mock.Anything, mock.Anything).Return(errors.New("db down"))

		rec := servePush(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		h, pushUC := newTestPushHandler(t, nil)

		pushUC.EXPECT().
			DeliverStatusChange(mock.Anything, mock.Anything).
			Return(domainerrors.ErrNotificationNotFound.WrapMessage("gone"))

		rec := servePush(h, pushBody(t, event, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)

		rec := servePush(h, `{"message":{"data":"not base64!"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payload is not an event", func(t *testing.T) {
		h, _ := newTestPushHandler(t, nil)
		data := base64.StdEncoding.EncodeToString([]byte("[]"))

		rec := servePush(h, `{"message":{"data":"`+data+`"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPushHandler_HandlePush_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)
	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := servePush(h, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsVerificationLocally(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = config.EnvLocal

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}

func TestPushHandler_Consume_FallsBackToPayloadTrace(t *testing.T) {
	h, pushUC := newTestPushHandler(t, nil)
	data, err := json.Marshal(&entity.RequestStatusChanged{NotificationID: uuid.New(), TraceID: "payload-trace"})
	require.NoError(t, err)

	pushUC.EXPECT().
		DeliverStatusChange(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "payload-trace"
		}), mock.Anything).
		Return(nil)

	require.NoError(t, h.Consume(context.Background(), data, ""))
}
