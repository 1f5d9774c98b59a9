package worker

import (
	"context"
	"log/slog"
	"sync"

	"neighborly/config"
	"neighborly/internal/delivery"
	"neighborly/internal/delivery/worker/handler"
	"neighborly/internal/domain/lifecycle"
	"neighborly/internal/infra/pubsub"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// natsQueueGroup spreads events across worker replicas so each is handled once.
const natsQueueGroup = "neighborly-push"

type natsConsumer struct {
	cfg     *config.PubSubConfig
	logger  *slog.Logger
	handler *handler.PushHandler

	mu   sync.Mutex
	conn *nats.Conn
}

// NATSConsumerParams holds dependencies for the NATS consumer
type NATSConsumerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewNATSConsumer creates the subscriber used when events travel over NATS.
// With any other provider Serve returns immediately.
func NewNATSConsumer(params NATSConsumerParams) (delivery.Delivery, error) {
	consumer := &natsConsumer{
		cfg:     params.Cfg.PubSub,
		logger:  params.Logger,
		handler: params.PushHandler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer, nil
}

func (c *natsConsumer) enabled() bool {
	return c.cfg != nil && c.cfg.Provider == pubsub.ProviderNATS
}

// Serve subscribes to the event subject; delivery continues on the NATS goroutines.
func (c *natsConsumer) Serve(ctx context.Context) error {
	if !c.enabled() {
		c.logger.Info("NATS consumer disabled")

		return nil
	}
	if c.cfg.NATSURL == "" {
		return errors.New("nats url is required for nats provider")
	}

	subject := c.cfg.NATSSubject
	if subject == "" {
		subject = pubsub.DefaultNATSSubject
	}

	conn, err := pubsub.ConnectNATS(c.cfg.NATSURL, "neighborly-worker", c.logger)
	if err != nil {
		return err
	}

	if _, err := conn.QueueSubscribe(subject, natsQueueGroup, c.handleMsg); err != nil {
		conn.Close()

		return errors.Wrapf(err, "failed to subscribe to %s", subject)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.logger.Info("Consuming request events from NATS",
		slog.String("subject", subject),
		slog.String("queue", natsQueueGroup),
	)

	return nil
}

// handleMsg runs one event through push delivery.
// Core NATS does not redeliver, so a retryable failure is logged and dropped.
func (c *natsConsumer) handleMsg(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	err := c.handler.Consume(ctx, msg.Data, msg.Header.Get("trace_id"))
	if err != nil && handler.IsRetryable(err) {
		c.logger.Warn("[NATS] Dropping event after transient failure",
			slog.String("subject", msg.Subject),
			slog.Any("error", err),
		)
	}
}

func (c *natsConsumer) stop(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}

	c.logger.Info("Draining NATS consumer")

	return errors.WithStack(c.conn.Drain())
}
