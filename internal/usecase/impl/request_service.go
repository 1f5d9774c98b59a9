package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"neighborly/config"
	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/lifecycle"
	"neighborly/internal/domain/repository"
	"neighborly/internal/domain/service"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type requestService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	serviceRepo repository.ServiceRepository
	requestRepo repository.RequestRepository
	publisher   service.EventPublisher
	push        *pushDispatcher
	deferPush   bool
	now         func() time.Time
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ServiceRepo repository.ServiceRepository
	RequestRepo repository.RequestRepository
	DeviceRepo  repository.DeviceRepository
	Config      *config.Config `optional:"true"`
	// NotificationSvc is nil when push is not configured.
	NotificationSvc service.NotificationService `optional:"true"`
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewRequestService creates a new request service instance
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	var deferPush bool
	if params.Config != nil {
		deferPush = params.Config.PubSub.PushDeferred()
	}

	return &requestService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		serviceRepo: params.ServiceRepo,
		requestRepo: params.RequestRepo,
		publisher:   params.Publisher,
		push:        newPushDispatcher(params.DeviceRepo, params.NotificationSvc),
		deferPush:   deferPush,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest records a new pending request from an elder to a volunteer.
func (srv *requestService) CreateRequest(ctx context.Context, elder *entity.User, input *usecase.CreateRequestInput) (*entity.Request, error) {
	if elder.Role != entity.RoleElder {
		return nil, domainerrors.ErrRoleRequired.WrapMessage("only elders can create requests")
	}

	slot, ok := entity.NewSlot(input.DayOfWeek, input.TimeOfDay)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidSlot, "unknown slot %q/%q", input.DayOfWeek, input.TimeOfDay)
	}

	if input.VolunteerID == uuid.Nil || input.VolunteerID == elder.ID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("volunteer_id must reference another user")
	}

	volunteer, err := srv.userRepo.FindByID(ctx, input.VolunteerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrVolunteerNotFound.WrapMessage("volunteer not found")
		}

		return nil, errors.Wrap(err, "failed to find volunteer")
	}
	if !volunteer.IsVolunteer() {
		return nil, domainerrors.ErrVolunteerNotFound.WrapMessage("user is not currently a volunteer")
	}

	svc, err := srv.serviceRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound.WrapMessage("service not found")
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	request := &entity.Request{
		ElderID:     elder.ID,
		VolunteerID: volunteer.ID,
		ServiceID:   svc.ID,
		Slot:        slot,
		Details:     strings.TrimSpace(input.Details),
		Urgent:      input.Urgent,
		Status:      entity.RequestStatusPending,
	}

	if err := srv.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	request.Service = svc
	request.VolunteerName = volunteer.FullName()

	srv.log(ctx).Info("Request created",
		slog.Any("requestID", request.ID),
		slog.Any("elderID", elder.ID),
		slog.Any("volunteerID", volunteer.ID),
		slog.Bool("urgent", request.Urgent),
	)

	return request, nil
}

// UpdateStatus applies a lifecycle transition on behalf of actorID.
// The status change and the notification to the other party commit together.
func (srv *requestService) UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, input *usecase.UpdateStatusInput) (*entity.Request, error) {
	status := entity.RequestStatus(strings.ToLower(strings.TrimSpace(input.Status)))
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidStatus, "unknown status %q", input.Status)
	}

	var (
		updated      *entity.Request
		previous     entity.RequestStatus
		notification *entity.Notification
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		current, err := requestRepo.LockRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound.WrapMessage("request not found")
			}

			return errors.Wrap(err, "failed to load request")
		}

		party, ok := current.PartyOf(actorID)
		if !ok {
			return domainerrors.ErrForbidden.WrapMessage("caller is not a party to this request")
		}

		if !entity.CanTransition(current.Status, status, party) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition,
				"%s cannot move request from %s to %s", party, current.Status, status)
		}
		previous = current.Status

		updated, err = requestRepo.UpdateRequestStatus(ctx, requestID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update request status")
		}

		actor, err := repoFactory.NewUserRepository().FindByID(ctx, actorID)
		if err != nil {
			return errors.Wrap(err, "failed to load acting user")
		}

		notificationType, _ := entity.NotificationTypeFor(status)
		notification = &entity.Notification{
			UserID:    current.PartyID(party.Other()),
			Type:      notificationType,
			Message:   entity.StatusMessage(status, actor.FullName()),
			RequestID: &updated.ID,
		}

		if err := repoFactory.NewNotificationRepository().CreateNotification(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Request status update failed",
			slog.Any("requestID", requestID),
			slog.Any("actorID", actorID),
			slog.String("status", string(status)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute request status transaction")
	}

	srv.log(ctx).Info("Request status changed",
		slog.Any("requestID", requestID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
		slog.Any("actorID", actorID),
	)

	srv.afterCommit(ctx, actorID, previous, updated, notification)

	return updated, nil
}

// afterCommit runs the best-effort side effects of a committed transition.
// They outlive a cancelled client request but are bounded by a timeout.
func (srv *requestService) afterCommit(ctx context.Context, actorID uuid.UUID, from entity.RequestStatus, request *entity.Request, notification *entity.Notification) {
	logger := srv.log(ctx)

	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if !srv.deferPush {
		if err := srv.push.dispatch(sideCtx, logger, notification); err != nil {
			logger.Warn("Push delivery failed", slog.Any("userID", notification.UserID), slog.Any("error", err))
		}
	}

	if srv.publisher == nil {
		return
	}

	event := &entity.RequestStatusChanged{
		RequestID:      request.ID,
		NotificationID: notification.ID,
		ElderID:        request.ElderID,
		VolunteerID:    request.VolunteerID,
		ActorID:        actorID,
		From:           from,
		To:             request.Status,
		OccurredAt:     srv.now().UTC(),
		TraceID:        deliverycontext.GetRequestIDFromContext(ctx),
	}
	if err := srv.publisher.PublishRequestStatusChanged(sideCtx, event); err != nil {
		logger.Warn("Failed to publish request status event", slog.Any("requestID", request.ID), slog.Any("error", err))
	}
}

// ListElderRequests returns the requests the caller created, newest first.
func (srv *requestService) ListElderRequests(ctx context.Context, elderID uuid.UUID) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.ListByElder(ctx, elderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list elder requests")
	}

	return requests, nil
}

// ListVolunteerRequests returns the requests addressed to the caller, newest first.
func (srv *requestService) ListVolunteerRequests(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list volunteer requests")
	}

	return requests, nil
}
