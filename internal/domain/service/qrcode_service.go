package service

import "github.com/google/uuid"

// QRCodeService produces and reads the share code that points at a volunteer's public profile.
type QRCodeService interface {
	// ProfileURL is the link encoded in the code.
	ProfileURL(volunteerID uuid.UUID) string

	// GenerateProfileQR renders ProfileURL as a PNG image.
	GenerateProfileQR(volunteerID uuid.UUID) ([]byte, error)

	// ParseProfileURL returns the volunteer id of a link produced by ProfileURL.
	// Links for another host or path are rejected.
	ParseProfileURL(link string) (uuid.UUID, error)
}
