package handler

import (
	"net/http"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	mockUsecase "neighborly/internal/mocks/usecase"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRequestHandler(t *testing.T) (*RequestHandler, *mockUsecase.MockRequestUsecase) {
	uc := mockUsecase.NewMockRequestUsecase(t)

	return NewRequestHandler(RequestHandlerParams{RequestUC: uc}), uc
}

func TestRequestHandler_CreateRequest(t *testing.T) {
	t.Run("passes the caller and body through", func(t *testing.T) {
		h, uc := newTestRequestHandler(t)
		elder := newTestUser(entity.RoleElder)
		volunteerID := uuid.New()
		created := &entity.Request{ID: uuid.New(), ElderID: elder.ID, VolunteerID: volunteerID, Status: entity.RequestStatusPending}

		uc.EXPECT().
			CreateRequest(mock.Anything, elder, &usecase.CreateRequestInput{
				VolunteerID: volunteerID,
				ServiceID:   3,
				DayOfWeek:   "monday",
				TimeOfDay:   "morning",
				Details:     "Weekly groceries",
				Urgent:      true,
			}).
			Return(created, nil)

		rec := perform(t, http.MethodPost, "/api/requests/new", "/api/requests/new",
			`{"volunteer_id":"`+volunteerID.String()+`","service_id":3,"day_of_week":"monday","time_of_day":"morning","details":"Weekly groceries","urgent":true}`,
			elder, h.CreateRequest)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		got := decodeData[entity.Request](t, decodeEnvelope(t, rec))
		assert.Equal(t, entity.RequestStatusPending, got.Status)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("missing volunteer", func(t *testing.T) {
		h, _ := newTestRequestHandler(t)

		rec := perform(t, http.MethodPost, "/api/requests/new", "/api/requests/new",
			`{"service_id":3,"day_of_week":"monday","time_of_day":"morning"}`, newTestUser(entity.RoleElder), h.CreateRequest)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "volunteer_id")
	})

	t.Run("malformed volunteer id", func(t *testing.T) {
		h, _ := newTestRequestHandler(t)

		rec := perform(t, http.MethodPost, "/api/requests/new", "/api/requests/new",
			`{"volunteer_id":"nope","service_id":3,"day_of_week":"monday","time_of_day":"morning"}`, newTestUser(entity.RoleElder), h.CreateRequest)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestRequestHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "illegal transition", ucErr: domainerrors.ErrInvalidStatusTransition, wantStatus: http.StatusBadRequest, wantCode: "INVALID_STATUS_TRANSITION"},
		{name: "unknown status", ucErr: domainerrors.ErrInvalidStatus, wantStatus: http.StatusBadRequest, wantCode: "INVALID_STATUS"},
		{name: "not a party", ucErr: domainerrors.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "unknown request", ucErr: domainerrors.ErrRequestNotFound, wantStatus: http.StatusNotFound, wantCode: "REQUEST_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newTestRequestHandler(t)
			user := newTestUser(entity.RoleVolunteer)
			requestID := uuid.New()

			uc.EXPECT().UpdateStatus(mock.Anything, user.ID, requestID, &usecase.UpdateStatusInput{Status: "accepted"}).Return(nil, tt.ucErr)

			rec := perform(t, http.MethodPatch, "/api/requests/:id/status", "/api/requests/"+requestID.String()+"/status",
				`{"status":"accepted"}`, user, h.UpdateStatus)

			requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)
		})
	}

	t.Run("accepted", func(t *testing.T) {
		h, uc := newTestRequestHandler(t)
		user := newTestUser(entity.RoleVolunteer)
		requestID := uuid.New()

		uc.EXPECT().
			UpdateStatus(mock.Anything, user.ID, requestID, &usecase.UpdateStatusInput{Status: "accepted"}).
			Return(&entity.Request{ID: requestID, Status: entity.RequestStatusAccepted}, nil)

		rec := perform(t, http.MethodPatch, "/api/requests/:id/status", "/api/requests/"+requestID.String()+"/status",
			`{"status":"accepted"}`, user, h.UpdateStatus)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[entity.Request](t, decodeEnvelope(t, rec))
		assert.Equal(t, entity.RequestStatusAccepted, got.Status)
	})
}

func TestRequestHandler_ListRequests(t *testing.T) {
	h, uc := newTestRequestHandler(t)
	user := newTestUser(entity.RoleVolunteer)
	requests := []*entity.Request{{ID: uuid.New(), VolunteerID: user.ID, Status: entity.RequestStatusPending}}

	uc.EXPECT().ListVolunteerRequests(mock.Anything, user.ID).Return(requests, nil)
	uc.EXPECT().ListElderRequests(mock.Anything, user.ID).Return([]*entity.Request{}, nil)

	rec := perform(t, http.MethodGet, "/api/requests/volunteer", "/api/requests/volunteer", "", user, h.ListVolunteerRequests)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]entity.Request](t, decodeEnvelope(t, rec)), 1)

	rec = perform(t, http.MethodGet, "/api/requests/elder", "/api/requests/elder", "", user, h.ListElderRequests)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
