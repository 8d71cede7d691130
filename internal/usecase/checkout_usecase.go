// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CheckoutUsecase defines the interface for placing an order from the cart.
type CheckoutUsecase interface {
	// Checkout validates the shipping and payment form, persists the
	// shipping address, totals the cart, clears it and returns a receipt
	// with an embedded QR code. Payment data is validated only; it is never
	// stored or forwarded anywhere.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutOutput, error)
}

// CheckoutInput defines the shipping and payment form payload.
type CheckoutInput struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	Country    string    `json:"country" validate:"required"`
	City       string    `json:"city" validate:"required"`
	ZipCode    string    `json:"zipCode" validate:"required"`
	Street     string    `json:"street" validate:"required"`
	CardNumber string    `json:"cardNumber" validate:"required"`
	Expiry     string    `json:"expiry" validate:"required"`
	CVC        string    `json:"cvc" validate:"required"`
}

// CheckoutOutput returns the order receipt. ReceiptQR is a PNG image encoding
// the order ID and the charged total.
type CheckoutOutput struct {
	OrderID   uuid.UUID
	Total     float64
	Currency  string
	ReceiptQR []byte
}
