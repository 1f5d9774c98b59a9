package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRatings(t *testing.T) {
	t.Run("no reviews", func(t *testing.T) {
		stats := AggregateRatings(nil)
		assert.Nil(t, stats.Rating)
		assert.Zero(t, stats.ReviewCount)
	})

	t.Run("first review", func(t *testing.T) {
		stats := AggregateRatings([]int{3})
		require.NotNil(t, stats.Rating)
		assert.Equal(t, 3.0, *stats.Rating)
		assert.Equal(t, 1, stats.ReviewCount)
	})

	t.Run("second review", func(t *testing.T) {
		stats := AggregateRatings([]int{3, 5})
		require.NotNil(t, stats.Rating)
		assert.Equal(t, 4.0, *stats.Rating)
		assert.Equal(t, 2, stats.ReviewCount)
	})

	t.Run("rounded to one decimal", func(t *testing.T) {
		stats := AggregateRatings([]int{5, 4, 4})
		require.NotNil(t, stats.Rating)
		assert.Equal(t, 4.3, *stats.Rating)
	})
}

func TestIsValidRating(t *testing.T) {
	assert.False(t, IsValidRating(0))
	assert.True(t, IsValidRating(1))
	assert.True(t, IsValidRating(5))
	assert.False(t, IsValidRating(6))
}

func TestRoleAndText(t *testing.T) {
	role, ok := ParseRole(" Volunteer ")
	assert.True(t, ok)
	assert.Equal(t, RoleVolunteer, role)

	_, ok = ParseRole("admin")
	assert.False(t, ok)

	assert.Equal(t, "boston", NormalizeText("  Boston "))

	u := &User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", u.FullName())
}
