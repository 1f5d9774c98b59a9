package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// DayOfWeek is one of the seven days of the weekly availability grid.
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// TimeOfDay is one of the three coarse periods of a day.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// Days lists the grid days in display order.
var Days = []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// TimesOfDay lists the grid periods in display order.
var TimesOfDay = []TimeOfDay{Morning, Afternoon, Evening}

// IsValid checks if the DayOfWeek is a valid value.
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	default:
		return false
	}
}

// IsValid checks if the TimeOfDay is a valid value.
func (t TimeOfDay) IsValid() bool {
	switch t {
	case Morning, Afternoon, Evening:
		return true
	default:
		return false
	}
}

// Slot is one cell of the 21-cell weekly availability grid.
type Slot struct {
	DayOfWeek DayOfWeek `json:"day_of_week"`
	TimeOfDay TimeOfDay `json:"time_of_day"`
}

// NewSlot normalizes day and time and returns the canonical Slot, or false when either is unknown.
func NewSlot(day, timeOfDay string) (Slot, bool) {
	slot := Slot{
		DayOfWeek: DayOfWeek(strings.ToLower(strings.TrimSpace(day))),
		TimeOfDay: TimeOfDay(strings.ToLower(strings.TrimSpace(timeOfDay))),
	}

	return slot, slot.IsValid()
}

// ParseSlotKey parses a composite "<day>-<time>" key such as "monday-morning".
func ParseSlotKey(key string) (Slot, bool) {
	day, timeOfDay, found := strings.Cut(key, "-")
	if !found {
		return Slot{}, false
	}

	return NewSlot(day, timeOfDay)
}

// IsValid reports whether both halves of the slot are canonical values.
func (s Slot) IsValid() bool {
	return s.DayOfWeek.IsValid() && s.TimeOfDay.IsValid()
}

// Key returns the composite "<day>-<time>" key used for availability overlap.
func (s Slot) Key() string {
	return string(s.DayOfWeek) + "-" + string(s.TimeOfDay)
}

// Index is the slot's position in the 7x3 grid, used for display ordering.
// Unknown values sort last.
func (s Slot) Index() int {
	day := slices.Index(Days, s.DayOfWeek)
	tod := slices.Index(TimesOfDay, s.TimeOfDay)
	if day < 0 || tod < 0 {
		return len(Days) * len(TimesOfDay)
	}

	return day*len(TimesOfDay) + tod
}

// AvailabilitySlot is a user's marking of one grid cell.
type AvailabilitySlot struct {
	UserID   uuid.UUID `json:"user_id"`
	Slot     Slot      `json:"slot"`
	Selected bool      `json:"selected"`
}

// DedupeSlots drops repeated slots while keeping the first occurrence order.
func DedupeSlots(slots []Slot) []Slot {
	seen := make(map[string]struct{}, len(slots))
	out := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		if _, ok := seen[slot.Key()]; ok {
			continue
		}
		seen[slot.Key()] = struct{}{}
		out = append(out, slot)
	}

	return out
}
