package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"neighborly/internal/domain/entity"
	"neighborly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPublishTimeout  = 10 * time.Second
	localMaxAttempts     = 3
	localRetryBackoff    = 200 * time.Millisecond
	localSubscriptionRef = "projects/local/subscriptions/request-status-push"
)

// PushMessage is the envelope Google Pub/Sub posts to push subscribers.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher posts events straight to the worker's push endpoint, standing in for a
// push subscription during development. A 503 from the worker is redelivered like Pub/Sub would.
type localHTTPPublisher struct {
	endpoint    string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:    endpoint,
		httpClient:  &http.Client{Timeout: localPublishTimeout},
		maxAttempts: localMaxAttempts,
		backoff:     localRetryBackoff,
		logger:      logger,
	}
}

func (p *localHTTPPublisher) PublishRequestStatusChanged(ctx context.Context, event *entity.RequestStatusChanged) error {
	body, err := newPushEnvelope(event)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		status, err := p.post(ctx, body, event.TraceID)
		if err != nil {
			return err
		}

		switch {
		case status >= http.StatusOK && status < http.StatusMultipleChoices:
			p.logger.Debug("[LocalPubSub] Event delivered",
				slog.String("endpoint", p.endpoint),
				slog.String("request_id", event.RequestID.String()),
				slog.Int("attempt", attempt),
			)

			return nil
		case status == http.StatusServiceUnavailable && attempt < p.maxAttempts:
			p.logger.Warn("[LocalPubSub] Worker asked for redelivery",
				slog.String("request_id", event.RequestID.String()),
				slog.Int("attempt", attempt),
			)
			if err := sleepContext(ctx, p.backoff*time.Duration(attempt)); err != nil {
				return err
			}
		default:
			return errors.Errorf("push endpoint returned status %d after %d attempt(s)", status, attempt)
		}
	}
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, traceID string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID != "" {
		req.Header.Set("X-Request-Id", traceID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to post to %s", p.endpoint)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

// newPushEnvelope encodes event the way a push subscription would deliver it.
func newPushEnvelope(event *entity.RequestStatusChanged) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request status event")
	}

	msg := PushMessage{Subscription: localSubscriptionRef}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode push envelope")
	}

	return body, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
