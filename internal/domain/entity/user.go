// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// The shipping address lives directly on the user row; the storefront keeps a
// single address per customer.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	FirstName string    // The user's given name, shown next to comments and orders.
	LastName  string    // The user's family name.
	Address   Address   // The user's shipping address. Zero-valued until checkout or an explicit save.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Address is the shipping address value object stored on the user row.
type Address struct {
	Country string
	City    string
	ZipCode string // Postal code in the NN-NNN form.
	Street  string
}

// IsComplete reports whether every address field has been filled in.
func (a Address) IsComplete() bool {
	return a.Country != "" && a.City != "" && a.ZipCode != "" && a.Street != ""
}
