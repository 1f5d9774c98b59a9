package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "neighborly/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags each request with an id and a logger that carries it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process stores the id in echo.Context and the request context and echoes it in X-Request-Id.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request())

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers a well-formed client id, then the upstream trace id, then a fresh UUID.
func resolveRequestID(req *http.Request) string {
	if id := req.Header.Get(deliverycontext.HeaderXRequestID); deliverycontext.AcceptableRequestID(id) {
		return id
	}

	if traceID := deliverycontext.TraceIDFromTraceParent(req.Header.Get(deliverycontext.HeaderTraceParent)); traceID != "" {
		return traceID
	}

	return uuid.NewString()
}
