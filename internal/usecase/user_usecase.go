// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for account and session operations.
type UserUsecase interface {
	// Register creates a new customer account with an email/password credential.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and opens a session. The configured sentinel
	// credentials always succeed and carry the admin role, regardless of
	// database state.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// Logout invalidates the session belonging to the given refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// GetMe returns the account of the authenticated user.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginInput defines the credentials for opening a session.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

// LogoutInput carries the raw refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken"`
}

// --- Output DTOs ---

// RegisterOutput returns the freshly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the session tokens together with the account. For a
// sentinel login without a matching database row, User carries a synthetic
// account payload.
type LoginOutput struct {
	User         *entity.User
	Roles        []string
	AccessToken  string
	RefreshToken string
}

// RefreshTokenOutput returns the replacement token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}
