// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a single sellable item in the catalog.
type Product struct {
	ID            uuid.UUID            // The Global Unique Identifier (GUID) for the product.
	Title         string               // The display title shown on listing and detail pages.
	Description   string               // The long-form description shown on the detail page.
	Specification []SpecificationGroup // Structured key/values specification, rendered as a table.
	Price         float64              // The base price before any discount.
	Discount      int                  // Discount percentage, 0 to 100.
	Rating        float64              // Cached average comment rating, rounded to one decimal. 0 when unrated.
	CategoryID    uuid.UUID            // Links the product to its category.
	Subcategory   string               // Free-form subcategory label within the category.
	Image         []byte               // PNG/JPEG bytes. Nil when the product has no image; travels as base64 over the wire.
	CreatedAt     time.Time            // Timestamp of when this product was created.
	UpdatedAt     time.Time            // Timestamp of the last modification.
}

// DiscountedPrice returns the effective unit price after applying the discount percentage.
func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - float64(p.Discount)/100)
}

// Category is a static catalog grouping that products belong to.
type Category struct {
	ID   uuid.UUID
	Name string
}
