// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves the whole catalog, ordered by creation time.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByCategory retrieves all products belonging to one category.
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)

	// SearchByTitle retrieves products whose title contains the query,
	// case-insensitively. An empty query matches the whole catalog.
	SearchByTitle(ctx context.Context, query string) ([]*entity.Product, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateRating overwrites only the cached rating column of the product row.
	UpdateRating(ctx context.Context, productID uuid.UUID, rating float64) error

	// Delete removes a product and, via database cascades, its cart rows and comments.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines read access to the static category lookup.
type CategoryRepository interface {
	// List retrieves all categories, ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
