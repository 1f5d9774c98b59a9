package impl

import (
	"context"
	"testing"

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

type matchServiceFixtures struct {
	service          usecase.MatchUsecase
	userRepo         *mockRepo.MockUserRepository
	serviceRepo      *mockRepo.MockServiceRepository
	availabilityRepo *mockRepo.MockAvailabilityRepository
	volunteerRepo    *mockRepo.MockVolunteerRepository
	reviewRepo       *mockRepo.MockReviewRepository
	qrcodeSvc        *mockSvc.MockQRCodeService
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	fx := matchServiceFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		serviceRepo:      mockRepo.NewMockServiceRepository(t),
		availabilityRepo: mockRepo.NewMockAvailabilityRepository(t),
		volunteerRepo:    mockRepo.NewMockVolunteerRepository(t),
		reviewRepo:       mockRepo.NewMockReviewRepository(t),
		qrcodeSvc:        mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewMatchService(MatchServiceParams{
		UserRepo:         fx.userRepo,
		ServiceRepo:      fx.serviceRepo,
		AvailabilityRepo: fx.availabilityRepo,
		VolunteerRepo:    fx.volunteerRepo,
		ReviewRepo:       fx.reviewRepo,
		QRCodeSvc:        fx.qrcodeSvc,
		Logger:           newDiscardLogger(),
	})

	return fx
}

func TestMatchService_MatchVolunteers_UsesNormalizedPreferences(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	elder := &entity.User{ID: uuid.New(), Role: entity.RoleElder, Gender: " Female", City: "Boston "}
	match := &entity.Volunteer{User: entity.User{ID: uuid.New(), City: "boston", Gender: "female"}}

	fx.userRepo.EXPECT().FindByID(ctx, elder.ID).Return(elder, nil)
	fx.serviceRepo.EXPECT().FindSelectedServices(ctx, elder.ID).Return([]*entity.Service{{ID: 1}, {ID: 4}}, nil)
	fx.availabilityRepo.EXPECT().FindSelectedSlots(ctx, elder.ID).Return([]entity.Slot{
		{DayOfWeek: entity.Monday, TimeOfDay: entity.Morning},
	}, nil)
	fx.volunteerRepo.EXPECT().FindMatches(ctx, repository.MatchCriteria{
		ElderID:    elder.ID,
		ServiceIDs: []int64{1, 4},
		SlotKeys:   []string{"monday-morning"},
		Gender:     "female",
		City:       "boston",
	}).Return([]*entity.Volunteer{match}, nil)

	got, err := fx.service.MatchVolunteers(ctx, elder.ID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)
}

func TestMatchService_MatchVolunteers_IncompletePreferences(t *testing.T) {
	tests := []struct {
		name     string
		elder    entity.User
		services []*entity.Service
		slots    []entity.Slot
	}{
		{
			name:  "no services",
			elder: entity.User{Gender: "female", City: "Boston"},
			slots: []entity.Slot{{DayOfWeek: entity.Monday, TimeOfDay: entity.Morning}},
		},
		{
			name:     "no availability",
			elder:    entity.User{Gender: "female", City: "Boston"},
			services: []*entity.Service{{ID: 1}},
		},
		{
			name:     "blank city",
			elder:    entity.User{Gender: "female", City: "   "},
			services: []*entity.Service{{ID: 1}},
			slots:    []entity.Slot{{DayOfWeek: entity.Monday, TimeOfDay: entity.Morning}},
		},
		{
			name:     "blank gender",
			elder:    entity.User{City: "Boston"},
			services: []*entity.Service{{ID: 1}},
			slots:    []entity.Slot{{DayOfWeek: entity.Monday, TimeOfDay: entity.Morning}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMatchService(t)
			elder := tt.elder
			elder.ID = uuid.New()

			fx.userRepo.EXPECT().FindByID(mock.Anything, elder.ID).Return(&elder, nil)
			fx.serviceRepo.EXPECT().FindSelectedServices(mock.Anything, elder.ID).Return(tt.services, nil)
			fx.availabilityRepo.EXPECT().FindSelectedSlots(mock.Anything, elder.ID).Return(tt.slots, nil)

			got, err := fx.service.MatchVolunteers(context.Background(), elder.ID)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			fx.volunteerRepo.AssertNotCalled(t, "FindMatches", mock.Anything, mock.Anything)
		})
	}
}

func TestMatchService_MatchVolunteers_UnknownElder(t *testing.T) {
	fx := createTestMatchService(t)
	elderID := uuid.New()

	fx.userRepo.EXPECT().FindByID(mock.Anything, elderID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.MatchVolunteers(context.Background(), elderID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestMatchService_GetVolunteer(t *testing.T) {
	t.Run("with reviews and profile link", func(t *testing.T) {
		fx := createTestMatchService(t)
		volunteer := &entity.Volunteer{User: entity.User{ID: uuid.New(), Role: entity.RoleVolunteer}}
		reviews := []*entity.Review{{Rating: 5}}

		fx.volunteerRepo.EXPECT().FindVolunteerByID(mock.Anything, volunteer.ID).Return(volunteer, nil)
		fx.reviewRepo.EXPECT().ListByVolunteer(mock.Anything, volunteer.ID).Return(reviews, nil)
		fx.qrcodeSvc.EXPECT().ProfileURL(volunteer.ID).Return("https://neighborly.test/volunteers/" + volunteer.ID.String())

		got, err := fx.service.GetVolunteer(context.Background(), volunteer.ID)

		require.NoError(t, err)
		assert.Equal(t, volunteer, got.Volunteer)
		assert.Equal(t, reviews, got.Reviews)
		assert.Contains(t, got.ProfileURL, volunteer.ID.String())
	})

	t.Run("not a volunteer", func(t *testing.T) {
		fx := createTestMatchService(t)
		id := uuid.New()

		fx.volunteerRepo.EXPECT().FindVolunteerByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		got, err := fx.service.GetVolunteer(context.Background(), id)

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrVolunteerNotFound))
	})
}

func TestMatchService_GetVolunteerQRCode(t *testing.T) {
	fx := createTestMatchService(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.volunteerRepo.EXPECT().FindVolunteerByID(mock.Anything, id).Return(&entity.Volunteer{User: entity.User{ID: id}}, nil)
	fx.qrcodeSvc.EXPECT().GenerateProfileQR(id).Return(png, nil)

	got, err := fx.service.GetVolunteerQRCode(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestMatchService_ResolveProfileLink(t *testing.T) {
	t.Run("known volunteer", func(t *testing.T) {
		fx := createTestMatchService(t)
		id := uuid.New()
		link := "https://neighborly.test/volunteers/" + id.String()
		volunteer := &entity.Volunteer{User: entity.User{ID: id, Role: entity.RoleVolunteer}}

		fx.qrcodeSvc.EXPECT().ParseProfileURL(link).Return(id, nil)
		fx.volunteerRepo.EXPECT().FindVolunteerByID(mock.Anything, id).Return(volunteer, nil)
		fx.reviewRepo.EXPECT().ListByVolunteer(mock.Anything, id).Return([]*entity.Review{}, nil)
		fx.qrcodeSvc.EXPECT().ProfileURL(id).Return(link)

		got, err := fx.service.ResolveProfileLink(context.Background(), &usecase.ScanProfileInput{Link: link})

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, link, got.ProfileURL)
	})

	t.Run("foreign link", func(t *testing.T) {
		fx := createTestMatchService(t)

		fx.qrcodeSvc.EXPECT().ParseProfileURL("https://example.com/").Return(uuid.Nil, errors.New("not a volunteer profile link"))

		got, err := fx.service.ResolveProfileLink(context.Background(), &usecase.ScanProfileInput{Link: "https://example.com/"})

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
