package validator

import (
	"testing"

	domainerrors "neighborly/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotInput struct {
	DayOfWeek string `json:"day_of_week" validate:"required"`
}

type sampleInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Role     string      `json:"role" validate:"required,oneof=elder volunteer"`
	IDs      []int64     `json:"service_ids" validate:"dive,gt=0"`
	Slots    []slotInput `json:"availability" validate:"dive"`
	Internal string      `json:"-" validate:"max=3"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&sampleInput{Email: "ada@example.com", Role: "elder", IDs: []int64{1}}))
	})

	t.Run("reports json field paths", func(t *testing.T) {
		err := v.Validate(&sampleInput{
			Email: "nope",
			IDs:   []int64{4, -1},
			Slots: []slotInput{{}},
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		details := appErr.Details()
		assert.Contains(t, details, "email must be a valid email address")
		assert.Contains(t, details, "role is required")
		assert.Contains(t, details, "service_ids[1] must satisfy gt=0")
		assert.Contains(t, details, "availability[0].day_of_week is required")
	})
}
