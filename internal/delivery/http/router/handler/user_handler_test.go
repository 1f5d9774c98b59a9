package handler

import (
	"net/http"
	"testing"

	"neighborly/internal/domain/entity"
	domainerrors "neighborly/internal/domain/errors"
	mockUsecase "neighborly/internal/mocks/usecase"
	"neighborly/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_RegisterUser(t *testing.T) {
	t.Run("creates the account and signs in", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)
		user := newTestUser(entity.RoleElder)

		uc.EXPECT().
			RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
				return in.Email == "ada@example.com" && in.Role == "elder" && in.City == "Boston"
			})).
			Return(&usecase.AuthOutput{Token: "signed", ExpiresIn: 3600, User: user}, nil)

		rec := perform(t, http.MethodPost, "/api/auth/register", "/api/auth/register",
			`{"email":"ada@example.com","password":"Password123!","first_name":"Ada","last_name":"Lovelace","role":"elder","city":"Boston"}`,
			nil, h.RegisterUser)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		out := decodeData[usecase.AuthOutput](t, env)
		assert.Equal(t, "signed", out.Token)
		assert.Equal(t, user.ID, out.User.ID)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("validation failure never reaches the use case", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)

		rec := perform(t, http.MethodPost, "/api/auth/register", "/api/auth/register",
			`{"email":"not-an-email","password":"Password123!","first_name":"Ada","last_name":"Lovelace","role":"admin"}`,
			nil, h.RegisterUser)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "email")
		assert.Contains(t, env.Error.Details, "role")
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)

		rec := perform(t, http.MethodPost, "/api/auth/register", "/api/auth/register", `{"email":`, nil, h.RegisterUser)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("email already registered", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)

		uc.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email taken"))

		rec := perform(t, http.MethodPost, "/api/auth/register", "/api/auth/register",
			`{"email":"ada@example.com","password":"Password123!","first_name":"Ada","last_name":"Lovelace","role":"volunteer"}`,
			nil, h.RegisterUser)

		requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)
		user := newTestUser(entity.RoleVolunteer)

		uc.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"}).
			Return(&usecase.AuthOutput{Token: "signed", User: user}, nil)

		rec := perform(t, http.MethodPost, "/api/auth/login", "/api/auth/login",
			`{"email":"ada@example.com","password":"Password123!"}`, nil, h.Login)

		require.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[usecase.AuthOutput](t, decodeEnvelope(t, rec))
		assert.Equal(t, "signed", out.Token)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		uc := mockUsecase.NewMockUserUsecase(t)
		h := NewUserHandler(uc, nil)

		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := perform(t, http.MethodPost, "/api/auth/login", "/api/auth/login",
			`{"email":"ada@example.com","password":"wrong"}`, nil, h.Login)

		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})
}
