package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReceiptQR generates a QR code image encoding an order receipt.
	GenerateReceiptQR(orderID uuid.UUID, total float64, currency string) ([]byte, error)

	// ParseReceiptQR parses receipt QR data and returns the order ID.
	ParseReceiptQR(qrData string) (uuid.UUID, error)
}
