package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHandler_Checkout_Success(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, newDiscardLogger())

	userID := uuid.New()
	orderID := uuid.New()
	qrPNG := []byte{0x89, 0x50, 0x4E, 0x47}
	uc.EXPECT().
		Checkout(mock.Anything, mock.AnythingOfType("*usecase.CheckoutInput")).
		Run(func(ctx context.Context, input *usecase.CheckoutInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "00-001", input.ZipCode)
		}).
		Return(&usecase.CheckoutOutput{
			OrderID:   orderID,
			Total:     200,
			Currency:  "PLN",
			ReceiptQR: qrPNG,
		}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/checkout", map[string]any{
		"userId":     userID.String(),
		"country":    "Poland",
		"city":       "Warsaw",
		"zipCode":    "00-001",
		"street":     "Main 1",
		"cardNumber": "4111 1111 1111 1111",
		"expiry":     "12/99",
		"cvc":        "123",
	})

	require.NoError(t, h.Checkout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, orderID.String(), data["orderId"])
	assert.InDelta(t, 200.0, data["total"], 0.001)
	assert.Equal(t, "PLN", data["currency"])
	// []byte fields travel as base64.
	assert.Equal(t, base64.StdEncoding.EncodeToString(qrPNG), data["receiptQr"])
}

func TestCheckoutHandler_Checkout_ValidationError(t *testing.T) {
	uc := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, newDiscardLogger())

	uc.EXPECT().
		Checkout(mock.Anything, mock.AnythingOfType("*usecase.CheckoutInput")).
		Return(nil, domainerrors.ErrCardExpired)

	c, _ := newJSONContext(t, http.MethodPost, "/api/checkout", map[string]any{
		"userId":     uuid.New().String(),
		"country":    "Poland",
		"city":       "Warsaw",
		"zipCode":    "00-001",
		"street":     "Main 1",
		"cardNumber": "4111 1111 1111 1111",
		"expiry":     "01/20",
		"cvc":        "123",
	})

	err := h.Checkout(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCardExpired)
}
