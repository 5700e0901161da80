package qrcode

import (
	"testing"

	"sommelier/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL}}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_GenerateDrinkQR(t *testing.T) {
	service := NewQRCodeService(newConfig(256, "M", "https://sommelier.example/drinks"))

	qrBytes, err := service.GenerateDrinkQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateDrinkQR_DifferentSizes(t *testing.T) {
	drinkID := uuid.New()
	small, err := NewQRCodeService(newConfig(128, "M", "")).GenerateDrinkQR(drinkID)
	require.NoError(t, err)
	large, err := NewQRCodeService(newConfig(512, "M", "")).GenerateDrinkQR(drinkID)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(small))
}

func TestQRCodeService_ParseDrinkQR(t *testing.T) {
	service := NewQRCodeService(newConfig(256, "M", "https://sommelier.example/drinks/"))
	drinkID := uuid.New()

	got, err := service.ParseDrinkQR("https://sommelier.example/drinks/" + drinkID.String())
	require.NoError(t, err)
	assert.Equal(t, drinkID, got)
}

func TestQRCodeService_ParseDrinkQR_Invalid(t *testing.T) {
	service := NewQRCodeService(newConfig(256, "M", "https://sommelier.example/drinks/"))

	for _, data := range []string{
		"https://elsewhere.example/drinks/" + uuid.NewString(),
		"https://sommelier.example/users/" + uuid.NewString(),
		"https://sommelier.example/drinks/not-a-uuid",
		"://bad",
	} {
		_, err := service.ParseDrinkQR(data)
		assert.Error(t, err, data)
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}
