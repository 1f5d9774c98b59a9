package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims. Email identifies the account; the user row
// is reloaded on every request so role switches apply immediately.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer access tokens.
type TokenService interface {
	GenerateToken(email string) (string, error)

	// ValidateToken rejects tokens with a bad signature, an unexpected algorithm or an elapsed expiry.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL is the lifetime of every issued token.
	TokenTTL() time.Duration
}
