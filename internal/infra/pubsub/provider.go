// Package pubsub publishes request lifecycle events to the configured message broker.
package pubsub

import (
	"context"
	"log/slog"

	"neighborly/config"
	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported broker providers.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderNATS   = "nats"
)

// DefaultNATSSubject carries request status events when no subject is configured.
const DefaultNATSSubject = "neighborly.requests.status"

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only logs at debug level.
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishRequestStatusChanged(ctx context.Context, event *entity.RequestStatusChanged) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("request_id", event.RequestID.String()),
		slog.String("status", string(event.To)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderNATS:
		if cfg.NATSURL == "" {
			return nil, errors.New("nats url is required for nats provider")
		}
		subject := cfg.NATSSubject
		if subject == "" {
			subject = DefaultNATSSubject
		}
		logger.Info("Using NATS publisher",
			slog.String("url", cfg.NATSURL),
			slog.String("subject", subject),
		)

		publisher, err = NewNATSPublisher(cfg.NATSURL, subject, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are the message attributes shared by every provider.
func eventAttributes(event *entity.RequestStatusChanged) map[string]string {
	attributes := map[string]string{
		"event_type":  "request.status_changed",
		"request_id":  event.RequestID.String(),
		"from_status": string(event.From),
		"to_status":   string(event.To),
	}
	if event.NotificationID != uuid.Nil {
		attributes["notification_id"] = event.NotificationID.String()
	}
	if event.TraceID != "" {
		attributes["trace_id"] = event.TraceID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
