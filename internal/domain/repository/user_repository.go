package repository

import (
	"context"
	"errors"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail maps the unique violation on users.email.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository persists accounts. Volunteer stats are loaded with the user row.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail expects an already normalized (trimmed, lowercased) address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes names, gender, city and bio; role and credentials are untouched.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error

	// UpdateRole switches the mode the user acts in.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error

	// UpdateVolunteerStats overwrites the aggregated rating and review count.
	UpdateVolunteerStats(ctx context.Context, id uuid.UUID, stats entity.VolunteerStats) error
}
