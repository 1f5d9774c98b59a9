package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is an elder's rating of a volunteer.
type Review struct {
	ID           uuid.UUID `json:"id"`
	ElderID      uuid.UUID `json:"elder_id"`
	VolunteerID  uuid.UUID `json:"volunteer_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	ReviewerName string    `json:"reviewer_name,omitempty"` // Read-side projection.
}

// IsValidRating reports whether rating is within the accepted range.
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// AggregateRatings recomputes a volunteer's stats from every rating they received.
// The mean is rounded to one decimal and is nil when there are no ratings.
func AggregateRatings(ratings []int) VolunteerStats {
	if len(ratings) == 0 {
		return VolunteerStats{}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := math.Round(float64(sum)/float64(len(ratings))*10) / 10

	return VolunteerStats{
		Rating:      &mean,
		ReviewCount: len(ratings),
	}
}
