package repository

import (
	"context"

	"neighborly/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchCriteria are an elder's stored preferences, already normalized.
type MatchCriteria struct {
	ElderID    uuid.UUID
	ServiceIDs []int64
	SlotKeys   []string // "<day>-<time>" composite keys
	Gender     string   // trimmed, lower-cased
	City       string   // trimmed, lower-cased
}

// VolunteerRepository reads users in the volunteer role together with their services and availability.
type VolunteerRepository interface {
	// FindMatches returns volunteers satisfying every criterion, best rated first.
	FindMatches(ctx context.Context, criteria MatchCriteria) ([]*entity.Volunteer, error)

	// ListVolunteers returns every volunteer with at least one selected service, best rated first.
	ListVolunteers(ctx context.Context) ([]*entity.Volunteer, error)

	// FindVolunteerByID returns a single volunteer, or ErrUserNotFound when the user
	// does not exist or is not currently a volunteer.
	FindVolunteerByID(ctx context.Context, id uuid.UUID) (*entity.Volunteer, error)
}
