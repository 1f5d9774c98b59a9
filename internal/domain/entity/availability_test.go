package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlot(t *testing.T) {
	slot, ok := NewSlot(" Monday ", "MORNING")
	assert.True(t, ok)
	assert.Equal(t, "monday-morning", slot.Key())

	_, ok = NewSlot("someday", "morning")
	assert.False(t, ok)

	_, ok = NewSlot("monday", "night")
	assert.False(t, ok)
}

func TestParseSlotKey(t *testing.T) {
	slot, ok := ParseSlotKey("tuesday-evening")
	assert.True(t, ok)
	assert.Equal(t, Slot{DayOfWeek: Tuesday, TimeOfDay: Evening}, slot)

	_, ok = ParseSlotKey("tuesday")
	assert.False(t, ok)
	_, ok = ParseSlotKey("tuesday-evening-late")
	assert.False(t, ok)
}

func TestGridHasTwentyOneSlots(t *testing.T) {
	keys := map[string]struct{}{}
	for _, d := range Days {
		for _, tod := range TimesOfDay {
			slot := Slot{DayOfWeek: d, TimeOfDay: tod}
			assert.True(t, slot.IsValid())
			keys[slot.Key()] = struct{}{}
		}
	}
	assert.Len(t, keys, 21)
}

func TestDedupeSlots(t *testing.T) {
	in := []Slot{
		{Monday, Morning},
		{Tuesday, Evening},
		{Monday, Morning},
	}
	assert.Equal(t, []Slot{{Monday, Morning}, {Tuesday, Evening}}, DedupeSlots(in))
}
