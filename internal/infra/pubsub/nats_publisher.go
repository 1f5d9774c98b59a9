package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/service"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// natsPublisher implements EventPublisher on a core NATS subject
type natsPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to the NATS server at url and publishes on subject
func NewNATSPublisher(url, subject string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := ConnectNATS(url, "neighborly", logger)
	if err != nil {
		return nil, err
	}

	return newNATSPublisher(conn, subject, logger), nil
}

// ConnectNATS dials the server with reconnects enabled and connection events logged
func ConnectNATS(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("[NATS] Disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("[NATS] Reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to nats")
	}

	return conn, nil
}

func newNATSPublisher(conn *nats.Conn, subject string, logger *slog.Logger) *natsPublisher {
	return &natsPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}
}

// PublishRequestStatusChanged publishes the event with its attributes as NATS headers
func (p *natsPublisher) PublishRequestStatusChanged(ctx context.Context, event *entity.RequestStatusChanged) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = data
	for key, value := range eventAttributes(event) {
		msg.Header.Set(key, value)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.subject)
	}

	p.logger.Debug("[NATS] Event published",
		slog.String("subject", p.subject),
		slog.String("request_id", event.RequestID.String()),
	)

	return nil
}

// Close flushes pending messages and closes the connection
func (p *natsPublisher) Close() error {
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}

	if err := p.conn.Drain(); err != nil {
		p.conn.Close()

		return errors.WithStack(err)
	}

	return nil
}
