package main

import (
	"context"
	"log/slog"
	"os"

	"neighborly/config"
	"neighborly/internal/delivery"
	"neighborly/internal/delivery/http"
	"neighborly/internal/delivery/http/middleware"
	"neighborly/internal/delivery/http/router/handler"
	"neighborly/internal/domain/service"
	"neighborly/internal/infra/auth"
	logs "neighborly/internal/infra/log"
	"neighborly/internal/infra/notification"
	"neighborly/internal/infra/persistence/postgres"
	"neighborly/internal/infra/pubsub"
	"neighborly/internal/infra/qrcode"
	"neighborly/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewServiceRepository,
			postgres.NewAvailabilityRepository,
			postgres.NewVolunteerRepository,
			postgres.NewRequestRepository,
			postgres.NewReviewRepository,
			postgres.NewNotificationRepository,
			postgres.NewFavoriteRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewFromConfig,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates the share code generator, falling back to defaults when not configured.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewMatchService,
			impl.NewRequestService,
			impl.NewReviewService,
			impl.NewFavoriteService,
			impl.NewNotificationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewProfileHandler,
			handler.NewVolunteerHandler,
			handler.NewRequestHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					os.Exit(1)
				}
			}
		}()
	}
}
