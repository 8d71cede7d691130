// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the standard operations for product review persistence.
type CommentRepository interface {
	// ListByProduct retrieves all comments for a product, newest first,
	// with the author display fields joined in.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// AverageRatingByProduct returns the mean star rating over all the
	// product's comments, rounded to one decimal. Products without comments
	// yield 0.
	AverageRatingByProduct(ctx context.Context, productID uuid.UUID) (float64, error)
}
