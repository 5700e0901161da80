package qrcode

import (
	"net/url"
	"strings"

	"sommelier/config"
	"sommelier/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080/drinks/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := "M"
	baseURL := defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateDrinkQR encodes the drink's public URL as a PNG QR code
func (s *qrcodeService) GenerateDrinkQR(drinkID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.baseURL+drinkID.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDrinkQR extracts the drink ID from a scanned drink URL
func (s *qrcodeService) ParseDrinkQR(qrData string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid base URL")
	}
	if u.Host != base.Host || !strings.HasPrefix(u.Path, base.Path) {
		return uuid.Nil, errors.Errorf("QR code does not point at a drink: %s", qrData)
	}

	drinkID, err := uuid.Parse(strings.TrimPrefix(u.Path, base.Path))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse drink ID")
	}

	return drinkID, nil
}
