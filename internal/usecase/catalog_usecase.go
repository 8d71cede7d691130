// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the interface for catalog browsing and admin product management.
type CatalogUsecase interface {
	// ListProducts returns the catalog, optionally filtered by category.
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]*entity.Product, error)

	// SearchProducts returns products whose title contains the query,
	// case-insensitively. An empty query returns the whole catalog.
	SearchProducts(ctx context.Context, query string) ([]*entity.Product, error)

	// GetProduct returns the full product payload by ID.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a product to the catalog. Admin surface.
	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)

	// UpdateProduct overwrites an existing product. Admin surface.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product together with its cart rows and comments. Admin surface.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// ListCategories returns the static category lookup.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// ProductInput defines the admin product form payload. The specification can
// arrive either structured or as the legacy marker-delimited text; when both
// are present the structured form wins.
type ProductInput struct {
	Title             string                      `json:"title" validate:"required"`
	Description       string                      `json:"description"`
	Specification     []entity.SpecificationGroup `json:"specification,omitempty"`
	SpecificationText string                      `json:"specificationText,omitempty"`
	Price             float64                     `json:"price"`
	Discount          int                         `json:"discount"`
	CategoryID        uuid.UUID                   `json:"categoryId" validate:"required"`
	Subcategory       string                      `json:"subcategory"`
	Image             []byte                      `json:"image,omitempty"`
}
