// Package entity holds the domain model: users and their roles, the service catalog,
// availability, help requests, reviews, notifications and devices.
package entity

import "strings"

// Role is the mode a user currently acts in. Switching keeps the account and its history.
type Role string

const (
	RoleElder     Role = "elder"
	RoleVolunteer Role = "volunteer"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleElder, RoleVolunteer:
		return true
	default:
		return false
	}
}

// ParseRole accepts any casing and surrounding whitespace, e.g. " Volunteer".
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}
