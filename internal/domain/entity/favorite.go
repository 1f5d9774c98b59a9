package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is an elder's bookmark of a volunteer. A pair exists at most once.
type Favorite struct {
	ElderID     uuid.UUID `json:"elder_id"`
	VolunteerID uuid.UUID `json:"volunteer_id"`
	CreatedAt   time.Time `json:"created_at"`
}
