package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"neighborly/config"
	deliverycontext "neighborly/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// probeRoutes are polled by the platform every few seconds and only logged when they fail.
var probeRoutes = map[string]struct{}{
	"/health": {},
	"/ready":  {},
}

// LoggerMiddleware writes one access log line per request.
// Successful requests are only logged in debug mode; 4xx and 5xx responses are always logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Render through the error handler first so the logged status is the one the client sees.
			c.Error(err)
		}

		if m.shouldLog(c) {
			m.logRequest(c, start, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) shouldLog(c echo.Context) bool {
	if c.Response().Status >= http.StatusBadRequest {
		return true
	}
	if _, probe := probeRoutes[c.Path()]; probe {
		return false
	}

	return m.debug
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	latency := time.Since(start)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_in", req.ContentLength),
		slog.Int64("bytes_out", res.Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if user, ok := deliverycontext.GetUser(c); ok {
		fields = append(fields,
			slog.String("user_id", user.ID.String()),
			slog.String("role", user.Role.String()),
		)
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case res.Status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case res.Status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	// The request context already carries the request_id through the scoped logger.
	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
