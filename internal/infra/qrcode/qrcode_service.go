// Package qrcode renders share codes that link to a volunteer's public profile.
package qrcode

import (
	"net/url"
	"strings"

	"neighborly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000"
	profilePath    = "/volunteers/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProfileURL returns the public profile link for a volunteer
func (s *qrcodeService) ProfileURL(volunteerID uuid.UUID) string {
	return s.baseURL + profilePath + volunteerID.String()
}

// GenerateProfileQR renders the profile link as a PNG QR code
func (s *qrcodeService) GenerateProfileQR(volunteerID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProfileURL(volunteerID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProfileURL extracts the volunteer id from a scanned profile link
func (s *qrcodeService) ParseProfileURL(link string) (uuid.UUID, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse profile link")
	}

	idPart, found := strings.CutPrefix(parsed.Path, profilePath)
	if !found || idPart == "" {
		return uuid.Nil, errors.Errorf("not a volunteer profile link: %s", link)
	}

	volunteerID, err := uuid.Parse(strings.TrimSuffix(idPart, "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse volunteer ID")
	}

	return volunteerID, nil
}
