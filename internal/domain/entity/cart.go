// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single unit of a product sitting in a user's cart.
// Quantity is not a column: holding three units of one product means three
// CartItem rows sharing the same (UserID, ProductID) pair.
type CartItem struct {
	ID        uuid.UUID // The unique ID of this cart row.
	UserID    uuid.UUID // The owning user's ID.
	ProductID uuid.UUID // The product this unit belongs to.
	CreatedAt time.Time // Timestamp of when this unit was added.
}

// CartEntry is a collapsed cart line for display: one product together with
// the number of unit rows the user holds for it.
type CartEntry struct {
	Product  Product
	Quantity int
}

// LineTotal returns the discounted price of the product multiplied by the quantity.
func (e *CartEntry) LineTotal() float64 {
	return e.Product.DiscountedPrice() * float64(e.Quantity)
}

// CartTotal sums the line totals of all entries.
func CartTotal(entries []*CartEntry) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.LineTotal()
	}

	return total
}
