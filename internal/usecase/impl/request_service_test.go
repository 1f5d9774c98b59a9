package impl

import (
	"context"
	"testing"

	"neighborly/config"
	deliverycontext "neighborly/internal/delivery/context"
	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	mockRepo "neighborly/internal/mocks/repository"
	mockSvc "neighborly/internal/mocks/service"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	serviceRepo *mockRepo.MockServiceRepository
	requestRepo *mockRepo.MockRequestRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	pushSvc     *mockSvc.MockNotificationService
	publisher   *mockSvc.MockEventPublisher
}

func createTestRequestService(t *testing.T, withPush bool) requestServiceFixtures {
	fx := requestServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		requestRepo: mockRepo.NewMockRequestRepository(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	params := RequestServiceParams{
		TxManager:   fx.txManager,
		UserRepo:    fx.userRepo,
		ServiceRepo: fx.serviceRepo,
		RequestRepo: fx.requestRepo,
		DeviceRepo:  fx.deviceRepo,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	}
	if withPush {
		fx.pushSvc = mockSvc.NewMockNotificationService(t)
		params.NotificationSvc = fx.pushSvc
	}

	fx.service = NewRequestService(params)

	return fx
}

// statusTx wires a transaction whose repositories see current as the stored request.
type statusTx struct {
	requestRepo      *mockRepo.MockRequestRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	factory          *mockRepo.MockRepositoryFactory
}

func newStatusTx(t *testing.T, fx requestServiceFixtures) statusTx {
	tx := statusTx{
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
	}
	tx.factory.EXPECT().NewRequestRepository().Return(tx.requestRepo)
	expectTransaction(fx.txManager, tx.factory)

	return tx
}

func newPendingRequest() *entity.Request {
	return &entity.Request{
		ID:          uuid.New(),
		ElderID:     uuid.New(),
		VolunteerID: uuid.New(),
		ServiceID:   1,
		Slot:        entity.Slot{DayOfWeek: entity.Monday, TimeOfDay: entity.Morning},
		Status:      entity.RequestStatusPending,
	}
}

func withStatus(req *entity.Request, status entity.RequestStatus) *entity.Request {
	updated := *req
	updated.Status = status

	return &updated
}

func TestRequestService_UpdateStatus_AcceptNotifiesElder(t *testing.T) {
	fx := createTestRequestService(t, true)
	tx := newStatusTx(t, fx)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	current := newPendingRequest()
	volunteer := &entity.User{ID: current.VolunteerID, FirstName: "Jane", LastName: "Doe", Role: entity.RoleVolunteer}

	tx.requestRepo.EXPECT().LockRequestByID(ctx, current.ID).Return(current, nil)
	tx.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, current.ID, entity.RequestStatusAccepted).
		Return(withStatus(current, entity.RequestStatusAccepted), nil)
	tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo)
	tx.userRepo.EXPECT().FindByID(ctx, current.VolunteerID).Return(volunteer, nil)
	tx.factory.EXPECT().NewNotificationRepository().Return(tx.notificationRepo)

	var stored *entity.Notification
	tx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(ctx context.Context, n *entity.Notification) {
			stored = n
		}).
		Return(nil).
		Once()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, current.ElderID).
		Return([]*entity.UserDevice{{FCMToken: "good"}, {FCMToken: "stale"}}, nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"good", "stale"}, "Request accepted", mock.Anything, mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeleteByFCMTokens(mock.Anything, []string{"stale"}).Return(nil)

	fx.publisher.EXPECT().
		PublishRequestStatusChanged(mock.Anything, mock.MatchedBy(func(e *entity.RequestStatusChanged) bool {
			return e.RequestID == current.ID &&
				e.From == entity.RequestStatusPending &&
				e.To == entity.RequestStatusAccepted &&
				e.ActorID == current.VolunteerID &&
				e.TraceID == "req-123"
		})).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, current.VolunteerID, current.ID, &usecase.UpdateStatusInput{Status: "accepted"})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, updated.Status)

	require.NotNil(t, stored)
	assert.Equal(t, current.ElderID, stored.UserID)
	assert.Equal(t, entity.NotificationRequestAccepted, stored.Type)
	assert.Contains(t, stored.Message, "Jane Doe")
	require.NotNil(t, stored.RequestID)
	assert.Equal(t, current.ID, *stored.RequestID)
}

func TestRequestService_UpdateStatus_CancelNotifiesOtherParty(t *testing.T) {
	tests := []struct {
		name      string
		from      entity.RequestStatus
		actor     func(*entity.Request) uuid.UUID
		recipient func(*entity.Request) uuid.UUID
	}{
		{
			name:      "elder cancels pending",
			from:      entity.RequestStatusPending,
			actor:     func(r *entity.Request) uuid.UUID { return r.ElderID },
			recipient: func(r *entity.Request) uuid.UUID { return r.VolunteerID },
		},
		{
			name:      "volunteer cancels accepted",
			from:      entity.RequestStatusAccepted,
			actor:     func(r *entity.Request) uuid.UUID { return r.VolunteerID },
			recipient: func(r *entity.Request) uuid.UUID { return r.ElderID },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t, false)
			tx := newStatusTx(t, fx)

			ctx := context.Background()
			current := withStatus(newPendingRequest(), tt.from)
			actorID := tt.actor(current)

			tx.requestRepo.EXPECT().LockRequestByID(ctx, current.ID).Return(current, nil)
			tx.requestRepo.EXPECT().
				UpdateRequestStatus(ctx, current.ID, entity.RequestStatusCanceled).
				Return(withStatus(current, entity.RequestStatusCanceled), nil)
			tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo)
			tx.userRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.User{ID: actorID, FirstName: "Sam", LastName: "Lee"}, nil)
			tx.factory.EXPECT().NewNotificationRepository().Return(tx.notificationRepo)
			tx.notificationRepo.EXPECT().
				CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
					return n.UserID == tt.recipient(current) && n.Type == entity.NotificationRequestCanceled
				})).
				Return(nil).
				Once()
			fx.publisher.EXPECT().PublishRequestStatusChanged(mock.Anything, mock.Anything).Return(nil)

			updated, err := fx.service.UpdateStatus(ctx, actorID, current.ID, &usecase.UpdateStatusInput{Status: "canceled"})

			require.NoError(t, err)
			assert.Equal(t, entity.RequestStatusCanceled, updated.Status)
		})
	}
}

func TestRequestService_UpdateStatus_IllegalTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.RequestStatus
		to      string
		byElder bool
	}{
		{name: "elder cannot accept", from: entity.RequestStatusPending, to: "accepted", byElder: true},
		{name: "volunteer cannot complete", from: entity.RequestStatusAccepted, to: "completed"},
		{name: "completed is terminal", from: entity.RequestStatusCompleted, to: "canceled", byElder: true},
		{name: "rejected cannot be accepted", from: entity.RequestStatusRejected, to: "accepted"},
		{name: "pending to pending", from: entity.RequestStatusPending, to: "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRequestService(t, false)
			tx := newStatusTx(t, fx)

			current := withStatus(newPendingRequest(), tt.from)
			actorID := current.VolunteerID
			if tt.byElder {
				actorID = current.ElderID
			}

			tx.requestRepo.EXPECT().LockRequestByID(mock.Anything, current.ID).Return(current, nil)

			updated, err := fx.service.UpdateStatus(context.Background(), actorID, current.ID, &usecase.UpdateStatusInput{Status: tt.to})

			assert.Nil(t, updated)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
			tx.requestRepo.AssertNotCalled(t, "UpdateRequestStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRequestService_UpdateStatus_NotAParty(t *testing.T) {
	fx := createTestRequestService(t, false)
	tx := newStatusTx(t, fx)

	current := newPendingRequest()
	tx.requestRepo.EXPECT().LockRequestByID(mock.Anything, current.ID).Return(current, nil)

	updated, err := fx.service.UpdateStatus(context.Background(), uuid.New(), current.ID, &usecase.UpdateStatusInput{Status: "accepted"})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestRequestService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestRequestService(t, false)
	tx := newStatusTx(t, fx)

	requestID := uuid.New()
	tx.requestRepo.EXPECT().LockRequestByID(mock.Anything, requestID).Return(nil, repository.ErrRequestNotFound)

	updated, err := fx.service.UpdateStatus(context.Background(), uuid.New(), requestID, &usecase.UpdateStatusInput{Status: "accepted"})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestRequestService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestRequestService(t, false)

	updated, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateStatusInput{Status: "archived"})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatus))
}

func TestRequestService_UpdateStatus_NotificationFailureAbortsTransition(t *testing.T) {
	fx := createTestRequestService(t, false)
	tx := newStatusTx(t, fx)

	ctx := context.Background()
	current := newPendingRequest()
	insertErr := errors.New("insert failed")

	tx.requestRepo.EXPECT().LockRequestByID(ctx, current.ID).Return(current, nil)
	tx.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, current.ID, entity.RequestStatusRejected).
		Return(withStatus(current, entity.RequestStatusRejected), nil)
	tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo)
	tx.userRepo.EXPECT().FindByID(ctx, current.VolunteerID).Return(&entity.User{FirstName: "Jane"}, nil)
	tx.factory.EXPECT().NewNotificationRepository().Return(tx.notificationRepo)
	tx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(insertErr)

	updated, err := fx.service.UpdateStatus(ctx, current.VolunteerID, current.ID, &usecase.UpdateStatusInput{Status: "rejected"})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, insertErr))
	fx.publisher.AssertNotCalled(t, "PublishRequestStatusChanged", mock.Anything, mock.Anything)
}

func TestRequestService_UpdateStatus_SideEffectFailuresDoNotFail(t *testing.T) {
	fx := createTestRequestService(t, true)
	tx := newStatusTx(t, fx)

	ctx := context.Background()
	current := withStatus(newPendingRequest(), entity.RequestStatusAccepted)

	tx.requestRepo.EXPECT().LockRequestByID(ctx, current.ID).Return(current, nil)
	tx.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, current.ID, entity.RequestStatusCompleted).
		Return(withStatus(current, entity.RequestStatusCompleted), nil)
	tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo)
	tx.userRepo.EXPECT().FindByID(ctx, current.ElderID).Return(&entity.User{FirstName: "Ada"}, nil)
	tx.factory.EXPECT().NewNotificationRepository().Return(tx.notificationRepo)
	tx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == current.VolunteerID && n.Type == entity.NotificationRequestCompleted
		})).
		Return(nil)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(mock.Anything, current.VolunteerID).Return(nil, errors.New("db down"))
	fx.publisher.EXPECT().PublishRequestStatusChanged(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	updated, err := fx.service.UpdateStatus(ctx, current.ElderID, current.ID, &usecase.UpdateStatusInput{Status: "Completed"})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCompleted, updated.Status)
}

func TestRequestService_UpdateStatus_DeferredPushOnlyPublishes(t *testing.T) {
	fx := requestServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pushSvc:    mockSvc.NewMockNotificationService(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewRequestService(RequestServiceParams{
		TxManager:       fx.txManager,
		DeviceRepo:      fx.deviceRepo,
		Config:          &config.Config{PubSub: &config.PubSubConfig{Provider: "nats", DeferPush: true}},
		NotificationSvc: fx.pushSvc,
		Publisher:       fx.publisher,
		Logger:          newDiscardLogger(),
	})
	tx := newStatusTx(t, fx)

	ctx := context.Background()
	current := newPendingRequest()
	notificationID := uuid.New()

	tx.requestRepo.EXPECT().LockRequestByID(ctx, current.ID).Return(current, nil)
	tx.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, current.ID, entity.RequestStatusCanceled).
		Return(withStatus(current, entity.RequestStatusCanceled), nil)
	tx.factory.EXPECT().NewUserRepository().Return(tx.userRepo)
	tx.userRepo.EXPECT().FindByID(ctx, current.ElderID).Return(&entity.User{FirstName: "Ada"}, nil)
	tx.factory.EXPECT().NewNotificationRepository().Return(tx.notificationRepo)
	tx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Run(func(ctx context.Context, n *entity.Notification) {
			n.ID = notificationID
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishRequestStatusChanged(mock.Anything, mock.MatchedBy(func(e *entity.RequestStatusChanged) bool {
			return e.NotificationID == notificationID && e.To == entity.RequestStatusCanceled
		})).
		Return(nil)

	_, err := fx.service.UpdateStatus(ctx, current.ElderID, current.ID, &usecase.UpdateStatusInput{Status: "canceled"})

	require.NoError(t, err)
	fx.deviceRepo.AssertNotCalled(t, "FindActiveDevicesByUser", mock.Anything, mock.Anything)
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	fx := createTestRequestService(t, false)

	ctx := context.Background()
	elder := &entity.User{ID: uuid.New(), Role: entity.RoleElder}
	volunteer := &entity.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Role: entity.RoleVolunteer}
	svc := &entity.Service{ID: 3, Key: "transportation"}

	fx.userRepo.EXPECT().FindByID(ctx, volunteer.ID).Return(volunteer, nil)
	fx.serviceRepo.EXPECT().FindServiceByID(ctx, int64(3)).Return(svc, nil)
	fx.requestRepo.EXPECT().
		CreateRequest(ctx, mock.MatchedBy(func(r *entity.Request) bool {
			return r.Status == entity.RequestStatusPending &&
				r.ElderID == elder.ID &&
				r.Slot == entity.Slot{DayOfWeek: entity.Tuesday, TimeOfDay: entity.Evening}
		})).
		Run(func(ctx context.Context, r *entity.Request) {
			r.ID = uuid.New()
		}).
		Return(nil)

	req, err := fx.service.CreateRequest(ctx, elder, &usecase.CreateRequestInput{
		VolunteerID: volunteer.ID,
		ServiceID:   3,
		DayOfWeek:   " Tuesday",
		TimeOfDay:   "EVENING",
		Details:     "  doctor appointment ",
		Urgent:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, req.Status)
	assert.Equal(t, "doctor appointment", req.Details)
	assert.Equal(t, "Jane Doe", req.VolunteerName)
	assert.Equal(t, svc, req.Service)
	assert.True(t, req.Urgent)
}

func TestRequestService_CreateRequest_Rejections(t *testing.T) {
	elder := &entity.User{ID: uuid.New(), Role: entity.RoleElder}
	volunteerID := uuid.New()
	valid := func() *usecase.CreateRequestInput {
		return &usecase.CreateRequestInput{VolunteerID: volunteerID, ServiceID: 1, DayOfWeek: "monday", TimeOfDay: "morning"}
	}

	t.Run("caller acting as volunteer", func(t *testing.T) {
		fx := createTestRequestService(t, false)

		_, err := fx.service.CreateRequest(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RoleVolunteer}, valid())

		assert.True(t, errors.Is(err, domainerrors.ErrRoleRequired))
	})

	t.Run("unknown slot", func(t *testing.T) {
		fx := createTestRequestService(t, false)
		input := valid()
		input.TimeOfDay = "midnight"

		_, err := fx.service.CreateRequest(context.Background(), elder, input)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidSlot))
	})

	t.Run("target is not a volunteer", func(t *testing.T) {
		fx := createTestRequestService(t, false)
		fx.userRepo.EXPECT().FindByID(mock.Anything, volunteerID).Return(&entity.User{ID: volunteerID, Role: entity.RoleElder}, nil)

		_, err := fx.service.CreateRequest(context.Background(), elder, valid())

		assert.True(t, errors.Is(err, domainerrors.ErrVolunteerNotFound))
	})

	t.Run("unknown service", func(t *testing.T) {
		fx := createTestRequestService(t, false)
		fx.userRepo.EXPECT().FindByID(mock.Anything, volunteerID).Return(&entity.User{ID: volunteerID, Role: entity.RoleVolunteer}, nil)
		fx.serviceRepo.EXPECT().FindServiceByID(mock.Anything, int64(1)).Return(nil, repository.ErrServiceNotFound)

		_, err := fx.service.CreateRequest(context.Background(), elder, valid())

		assert.True(t, errors.Is(err, domainerrors.ErrServiceNotFound))
	})

	t.Run("request to self", func(t *testing.T) {
		fx := createTestRequestService(t, false)
		input := valid()
		input.VolunteerID = elder.ID

		_, err := fx.service.CreateRequest(context.Background(), elder, input)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
