package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"neighborly/config"
	"neighborly/internal/delivery"
	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/delivery/middleware"
	"neighborly/internal/delivery/worker/handler"
	"neighborly/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// readinessTimeout bounds the dependency check behind /ready.
const readinessTimeout = 2 * time.Second

// Pinger is a dependency /ready checks before the broker is allowed to push.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
	DB          *gorm.DB `optional:"true"`
}

// NewServer creates the worker HTTP server that receives broker pushes
func NewServer(params ServerParams) (delivery.Delivery, error) {
	var db Pinger
	if params.DB != nil {
		sqlDB, err := params.DB.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
		}
		db = sqlDB
	}

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.PushHandler, db),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler, db Pinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover first, then request id so the access log carries it
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/ready", readinessHandler(db))

	e.POST("/push", pushHandler.HandlePush)

	return e
}

// readinessHandler reports 503 while the notification store is unreachable, so the
// platform stops routing pushes that would only be redelivered.
func readinessHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db == nil {
			return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Warn("[Worker] Readiness check failed", slog.Any("error", err))

			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	}
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Worker.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
