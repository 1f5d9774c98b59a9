package impl

import (
	"context"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	mockRepo "neighborly/internal/mocks/repository"
	"neighborly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return favoriteServiceFixtures{
		service:      NewFavoriteService(favoriteRepo, userRepo),
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

func TestFavoriteService_AddFavorite_Idempotent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	elderID := uuid.New()
	volunteerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, volunteerID).Return(&entity.User{ID: volunteerID, Role: entity.RoleVolunteer}, nil).Times(2)
	fx.favoriteRepo.EXPECT().
		AddFavorite(ctx, mock.MatchedBy(func(f *entity.Favorite) bool {
			return f.ElderID == elderID && f.VolunteerID == volunteerID
		})).
		Return(nil).
		Times(2)

	require.NoError(t, fx.service.AddFavorite(ctx, elderID, volunteerID))
	require.NoError(t, fx.service.AddFavorite(ctx, elderID, volunteerID))
}

func TestFavoriteService_AddFavorite_Rejections(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		id := uuid.New()

		err := fx.service.AddFavorite(context.Background(), id, id)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unknown volunteer", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		volunteerID := uuid.New()

		fx.userRepo.EXPECT().FindByID(mock.Anything, volunteerID).Return(nil, repository.ErrUserNotFound)

		err := fx.service.AddFavorite(context.Background(), uuid.New(), volunteerID)

		assert.True(t, errors.Is(err, domainerrors.ErrVolunteerNotFound))
	})

	t.Run("target is not a volunteer", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		elderID := uuid.New()

		fx.userRepo.EXPECT().FindByID(mock.Anything, elderID).Return(&entity.User{ID: elderID, Role: entity.RoleElder}, nil)

		err := fx.service.AddFavorite(context.Background(), uuid.New(), elderID)

		assert.True(t, errors.Is(err, domainerrors.ErrVolunteerNotFound))
		fx.favoriteRepo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_RemoveFavorite_MissingIsNotAnError(t *testing.T) {
	fx := createTestFavoriteService(t)
	elderID, volunteerID := uuid.New(), uuid.New()

	fx.favoriteRepo.EXPECT().RemoveFavorite(mock.Anything, elderID, volunteerID).Return(nil)

	assert.NoError(t, fx.service.RemoveFavorite(context.Background(), elderID, volunteerID))
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)
	elderID := uuid.New()
	favorites := []*entity.User{{ID: uuid.New(), FirstName: "Jane"}}

	fx.favoriteRepo.EXPECT().ListFavoriteVolunteers(mock.Anything, elderID).Return(favorites, nil)

	got, err := fx.service.ListFavorites(context.Background(), elderID)

	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}
