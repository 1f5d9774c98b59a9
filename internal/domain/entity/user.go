package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a person who can act as an elder or a volunteer.
type User struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Role         Role            `json:"role"`
	Gender       string          `json:"gender"`
	City         string          `json:"city"`
	Bio          string          `json:"bio"`
	Volunteer    *VolunteerStats `json:"volunteer,omitempty"` // Populated when the user is read as a volunteer.
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// VolunteerStats holds the attributes that only mean something for the volunteer role.
type VolunteerStats struct {
	Rating      *float64 `json:"rating"` // nil while the volunteer has no reviews.
	ReviewCount int      `json:"review_count"`
}

// FullName returns the display name of the user.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsVolunteer reports whether the user currently acts as a volunteer.
func (u *User) IsVolunteer() bool {
	return u.Role == RoleVolunteer
}

// Volunteer is a user read in volunteer mode, together with everything they offer.
type Volunteer struct {
	User
	Services       []*Service `json:"services"`
	Availabilities []Slot     `json:"availabilities"`
}

// NormalizeText trims and lower-cases free text used as an exact-match filter (gender, city).
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
