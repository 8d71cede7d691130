// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the operations for the row-per-unit cart storage.
// The quantity of a (user, product) pair is always derived from the number of
// rows holding that pair; there is no quantity column to reconcile.
type CartRepository interface {
	// AddUnits inserts n rows for the (user, product) pair.
	AddUnits(ctx context.Context, userID, productID uuid.UUID, n int) error

	// CountUnits returns the number of rows currently held for the pair.
	CountUnits(ctx context.Context, userID, productID uuid.UUID) (int, error)

	// RemoveUnits deletes at most limit rows for the pair and returns how many
	// were actually deleted. Asking for more than present empties the pair.
	RemoveUnits(ctx context.Context, userID, productID uuid.UUID, limit int) (int, error)

	// ListEntries returns the user's cart collapsed into one entry per product
	// with its unit count, ordered by ascending discounted price.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error)

	// ClearByUser removes every cart row the user holds.
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}
