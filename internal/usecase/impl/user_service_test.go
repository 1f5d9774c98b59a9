package impl

import (
	"context"
	"testing"
	"time"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	"neighborly/internal/domain/repository"
	"neighborly/internal/domain/service"
	mockRepo "neighborly/internal/mocks/repository"
	mockSvc "neighborly/internal/mocks/service"
	"neighborly/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(8),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:     " Ada@Example.com ",
		Password:  "Password123!",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      "Volunteer",
		Gender:    "female",
		City:      "Boston",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTransaction(fx.txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.tokenService.EXPECT().GenerateToken("ada@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(8 * time.Hour)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, int64(8*60*60), output.ExpiresIn)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, entity.RoleVolunteer, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:     "taken@example.com",
		Password:  "Password123!",
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      "elder",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTransaction(fx.txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_DuplicateOnInsert(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:     "race@example.com",
		Password:  "Password123!",
		FirstName: "Race",
		LastName:  "Condition",
		Role:      "elder",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTransaction(fx.txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_RejectsInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterUserInput
	}{
		{
			name:  "unknown role",
			input: &usecase.RegisterUserInput{Email: "a@example.com", Password: "Password123!", Role: "admin"},
		},
		{
			name:  "short password",
			input: &usecase.RegisterUserInput{Email: "a@example.com", Password: "short", Role: "elder"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			output, err := fx.service.RegisterUser(context.Background(), tt.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash", Role: entity.RoleElder}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hash").Return(false)
	fx.tokenService.EXPECT().GenerateToken("ada@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(8 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ADA@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UpgradesWeakHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "weak-hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "weak-hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("weak-hash").Return(true)
	fx.hasher.EXPECT().Hash("Password123!").Return("strong-hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, user.ID, "strong-hash").Return(nil)
	fx.tokenService.EXPECT().GenerateToken("ada@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(8 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "strong-hash", output.User.PasswordHash)
}

func TestUserService_Login_RehashFailureStillLogsIn(t *testing.T) {
	fx := createTestUserService(t)

	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "weak-hash"}

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "weak-hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("weak-hash").Return(true)
	fx.hasher.EXPECT().Hash("Password123!").Return("strong-hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(mock.Anything, user.ID, "strong-hash").Return(errors.New("read-only replica"))
	fx.tokenService.EXPECT().GenerateToken("ada@example.com").Return("signed-token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(8 * time.Hour)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "weak-hash", output.User.PasswordHash)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, "ada@example.com").
			Return(&entity.User{Email: "ada@example.com", PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_Login_StoreError(t *testing.T) {
	fx := createTestUserService(t)

	storeErr := errors.New("connection reset")
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, storeErr)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the current user", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleVolunteer}

		fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
			Email:            "ada@example.com",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "ada@example.com"},
		}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)

		got, err := fx.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))

		got, err := fx.service.Authenticate(ctx, "bad")

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("subject no longer exists", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{Email: "gone@example.com"}, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		got, err := fx.service.Authenticate(ctx, "orphan")

		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
