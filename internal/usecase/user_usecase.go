// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"neighborly/internal/domain/entity"
)

// UserUsecase defines the interface for registration, login and token resolution.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// Authenticate resolves a bearer token to the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=elder volunteer"`
	Gender    string `json:"gender" validate:"max=50"`
	City      string `json:"city" validate:"max=100"`
}

// LoginInput defines the data required for email/password login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned after successful registration or login.
type AuthOutput struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"` // seconds
	User      *entity.User `json:"user"`
}
