package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"neighborly/config"
	"neighborly/internal/delivery/worker/handler"
	"neighborly/internal/domain/entity"
	mockUsecase "neighborly/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConsumer(t *testing.T, pubsubCfg *config.PubSubConfig) (*natsConsumer, *mockUsecase.MockPushUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{PubSub: pubsubCfg}
	pushUC := mockUsecase.NewMockPushUsecase(t)

	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, PushUC: pushUC})
	consumer, err := NewNATSConsumer(NATSConsumerParams{
		Lc:          fxtest.NewLifecycle(t),
		Cfg:         cfg,
		Logger:      logger,
		PushHandler: pushHandler,
	})
	require.NoError(t, err)

	return consumer.(*natsConsumer), pushUC
}

func TestNATSConsumer_DisabledForOtherProviders(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{nil, {Provider: "google"}} {
		consumer, _ := newTestConsumer(t, cfg)

		require.NoError(t, consumer.Serve(context.Background()))
		assert.Nil(t, consumer.conn)
		assert.NoError(t, consumer.stop(context.Background()))
	}
}

func TestNATSConsumer_RequiresURL(t *testing.T) {
	consumer, _ := newTestConsumer(t, &config.PubSubConfig{Provider: "nats"})

	assert.Error(t, consumer.Serve(context.Background()))
}

func TestNATSConsumer_HandleMsg(t *testing.T) {
	consumer, pushUC := newTestConsumer(t, &config.PubSubConfig{Provider: "nats"})
	event := &entity.RequestStatusChanged{NotificationID: uuid.New(), To: entity.RequestStatusCompleted}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	pushUC.EXPECT().
		DeliverStatusChange(mock.Anything, mock.MatchedBy(func(e *entity.RequestStatusChanged) bool {
			return e.NotificationID == event.NotificationID
		})).
		Return(errors.New("fcm unavailable")).
		Once()

	msg := nats.NewMsg("neighborly.requests.status")
	msg.Data = data
	msg.Header.Set("trace_id", "trace-9")

	assert.NotPanics(t, func() { consumer.handleMsg(msg) })
}
