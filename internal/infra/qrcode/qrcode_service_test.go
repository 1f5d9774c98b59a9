package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://neighborly.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateProfileQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://neighborly.example")

	qrBytes, err := service.GenerateProfileQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ProfileURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://neighborly.example/")
	volunteerID := uuid.New()

	link := service.ProfileURL(volunteerID)
	assert.Equal(t, "https://neighborly.example/volunteers/"+volunteerID.String(), link)

	parsed, err := service.ParseProfileURL(link)
	require.NoError(t, err)
	assert.Equal(t, volunteerID, parsed)
}

func TestQRCodeService_ParseProfileURL_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name string
		link string
	}{
		{"Wrong path", "https://neighborly.example/elders/" + uuid.NewString()},
		{"Missing id", "https://neighborly.example/volunteers/"},
		{"Bad id", "https://neighborly.example/volunteers/not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseProfileURL(tt.link)
			assert.Error(t, err)
		})
	}
}
