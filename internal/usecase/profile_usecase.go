// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for user administration and address management.
type ProfileUsecase interface {
	// ListUsers returns every account. Admin surface; password hashes never leave the credential table.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single account by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// CreateUser creates an account from the admin panel's add-user form.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// UpdateUser overwrites profile fields of an existing account.
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// DeleteUser removes an account together with its cart rows, comments and sessions.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// GetAddress returns the user's saved shipping address.
	GetAddress(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// SaveAddress overwrites the user's shipping address.
	SaveAddress(ctx context.Context, userID uuid.UUID, input *SaveAddressInput) (*entity.Address, error)
}

// --- Input DTOs ---

// CreateUserInput defines the data for the admin add-user form.
type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UpdateUserInput defines the updatable profile fields. Nil pointers leave
// the stored value untouched.
type UpdateUserInput struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Country   *string `json:"country,omitempty"`
	City      *string `json:"city,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Street    *string `json:"street,omitempty"`
}

// SaveAddressInput defines the full shipping address payload.
type SaveAddressInput struct {
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Street  string `json:"street" validate:"required"`
}
