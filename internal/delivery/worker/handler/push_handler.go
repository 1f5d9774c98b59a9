package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"neighborly/config"
	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/infra/pubsub"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// ErrMalformedEvent is returned by Consume when the payload is not a request status event.
var ErrMalformedEvent = errors.New("malformed request status event")

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenVerifier checks the OIDC token Google attaches to authenticated push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler consumes request status events and hands them to push delivery
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	pushUC         usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push requests carry an OIDC token, and local runs skip the check
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvLocal

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		pushUC:         params.PushUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 503 asks the broker to redeliver; every other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	err = h.Consume(ctx, data, pushMsg.Message.Attributes["trace_id"])
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, ErrMalformedEvent):
		return c.NoContent(http.StatusBadRequest)
	case IsRetryable(err):
		return c.NoContent(http.StatusServiceUnavailable)
	default:
		return c.NoContent(http.StatusOK)
	}
}

// Consume processes one encoded RequestStatusChanged event from any broker.
// traceID overrides the id carried in the payload when the transport supplies one.
func (h *PushHandler) Consume(ctx context.Context, data []byte, traceID string) error {
	var event entity.RequestStatusChanged
	if err := json.Unmarshal(data, &event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("[Worker] Failed to parse request status event", slog.Any("error", err))

		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	requestID := h.extractRequestID(ctx, traceID, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing request status event",
		slog.String("event_request_id", event.RequestID.String()),
		slog.String("notification_id", event.NotificationID.String()),
		slog.String("status", string(event.To)),
	)

	if err := h.pushUC.DeliverStatusChange(ctx, &event); err != nil {
		retryable := isRetryableDelivery(err)
		reqLogger.Error("[Worker] Failed to deliver push",
			slog.String("notification_id", event.NotificationID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return newRetryableError(err)
		}

		return errors.WithStack(err)
	}

	return nil
}

// extractRequestID picks the transport trace id, then the event's own, then the inbound request id
func (h *PushHandler) extractRequestID(ctx context.Context, traceID string, event *entity.RequestStatusChanged) string {
	if deliverycontext.AcceptableRequestID(traceID) {
		return traceID
	}

	if deliverycontext.AcceptableRequestID(event.TraceID) {
		return event.TraceID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// isRetryableDelivery separates transient store/provider failures from events that can never succeed
func isRetryableDelivery(err error) bool {
	return !errors.Is(err, domainerrors.ErrValidationFailed) &&
		!errors.Is(err, domainerrors.ErrNotificationNotFound)
}

// retryableError wraps an error to indicate it should trigger a broker retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether Consume failed in a way a redelivery may fix
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
