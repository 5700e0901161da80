package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDrinkQR generates a PNG QR code pointing at a drink's public page
	GenerateDrinkQR(drinkID uuid.UUID) ([]byte, error)

	// ParseDrinkQR parses QR code data and returns the drink ID
	ParseDrinkQR(qrData string) (uuid.UUID, error)
}
