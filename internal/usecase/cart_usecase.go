// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart operations. All multi-row
// mutations are atomic: either every requested unit row is written or none.
type CartUsecase interface {
	// AddToCart inserts one row per requested unit in a single transaction.
	AddToCart(ctx context.Context, input *AddToCartInput) error

	// RemoveItems removes units across several products in one transaction.
	// Per product, the requested quantity is clamped to the current unit
	// count; any failure rolls back the whole batch.
	RemoveItems(ctx context.Context, input *RemoveItemsInput) error

	// GetCart returns the cart collapsed to one entry per product, ordered
	// by ascending discounted price.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error)

	// ClearCart removes every unit row the user holds.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// AddToCartInput defines a single-product add request.
type AddToCartInput struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// RemoveItem names one product and how many of its units to drop.
type RemoveItem struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// RemoveItemsInput defines a batched remove request.
type RemoveItemsInput struct {
	UserID uuid.UUID    `json:"userId" validate:"required"`
	Items  []RemoveItem `json:"items" validate:"required,dive"`
}

// --- Output DTOs ---

// CartOutput carries the collapsed cart entries and the running total over
// discounted prices.
type CartOutput struct {
	Entries []*entity.CartEntry
	Total   float64
}
