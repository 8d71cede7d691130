package handler

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_AddToCart_Success(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	userID := uuid.New()
	productID := uuid.New()
	uc.EXPECT().
		AddToCart(mock.Anything, mock.AnythingOfType("*usecase.AddToCartInput")).
		Run(func(ctx context.Context, input *usecase.AddToCartInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, productID, input.ProductID)
			assert.Equal(t, 3, input.Quantity)
		}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/api/cart/add", map[string]any{
		"userId":    userID.String(),
		"productId": productID.String(),
		"quantity":  3,
	})

	require.NoError(t, h.AddToCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	assert.Equal(t, true, data["success"])
}

func TestCartHandler_AddToCart_InvalidQuantity(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().
		AddToCart(mock.Anything, mock.AnythingOfType("*usecase.AddToCartInput")).
		Return(domainerrors.ErrCartQuantityInvalid)

	c, _ := newJSONContext(t, http.MethodPost, "/api/cart/add", map[string]any{
		"userId":    uuid.New().String(),
		"productId": uuid.New().String(),
		"quantity":  0,
	})

	err := h.AddToCart(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartQuantityInvalid)
}

func TestCartHandler_RemoveItems_Success(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	uc.EXPECT().
		RemoveItems(mock.Anything, mock.AnythingOfType("*usecase.RemoveItemsInput")).
		Run(func(ctx context.Context, input *usecase.RemoveItemsInput) {
			require.Len(t, input.Items, 2)
		}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/cart/remove", map[string]any{
		"userId": uuid.New().String(),
		"items": []map[string]any{
			{"productId": uuid.New().String(), "quantity": 1},
			{"productId": uuid.New().String(), "quantity": 2},
		},
	})

	require.NoError(t, h.RemoveItems(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_GetCart_Success(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	userID := uuid.New()
	output := &usecase.CartOutput{
		Entries: []*entity.CartEntry{
			{Product: entity.Product{ID: uuid.New(), Title: "Mouse", Price: 90}, Quantity: 2},
		},
		Total: 180,
	}
	uc.EXPECT().GetCart(mock.Anything, userID).Return(output, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/api/cart?userId="+userID.String(), nil)

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeEnvelope(t, rec)
	items, ok := data["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.InDelta(t, 180.0, data["total"], 0.001)
}

func TestCartHandler_GetCart_MalformedUserID(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/api/cart?userId=not-a-uuid", nil)

	require.NoError(t, h.GetCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_ClearCart_Success(t *testing.T) {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().ClearCart(mock.Anything, userID).Return(nil)

	c, rec := newJSONContext(t, http.MethodDelete, "/api/cart/clear", map[string]any{
		"userId": userID.String(),
	})

	require.NoError(t, h.ClearCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
