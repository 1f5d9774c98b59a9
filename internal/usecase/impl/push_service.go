package impl

import (
	"context"
	"log/slog"

	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/domain/service"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pushService struct {
	notificationRepo repository.NotificationRepository
	push             *pushDispatcher
	logger           *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	NotificationSvc  service.NotificationService `optional:"true"`
	Logger           *slog.Logger
}

// NewPushService creates the worker side of push delivery.
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		notificationRepo: params.NotificationRepo,
		push:             newPushDispatcher(params.DeviceRepo, params.NotificationSvc),
		logger:           params.Logger,
	}
}

// DeliverStatusChange loads the notification written with the transition and pushes it.
// Malformed events and vanished notifications are reported as validation or not-found errors.
func (srv *pushService) DeliverStatusChange(ctx context.Context, event *entity.RequestStatusChanged) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event.NotificationID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("event carries no notification id")
	}

	if !srv.push.enabled() {
		logger.Debug("Push disabled, dropping event", slog.Any("notificationID", event.NotificationID))

		return nil
	}

	notification, err := srv.notificationRepo.FindByID(ctx, event.NotificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("notification no longer exists")
		}

		return errors.Wrap(err, "failed to load notification")
	}

	if err := srv.push.dispatch(ctx, logger, notification); err != nil {
		return errors.Wrap(err, "failed to dispatch push")
	}

	logger.Info("Push dispatched for request event",
		slog.Any("requestID", event.RequestID),
		slog.Any("notificationID", notification.ID),
		slog.String("status", string(event.To)),
	)

	return nil
}
