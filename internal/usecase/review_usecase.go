// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for product comments and the derived
// product rating cache.
type ReviewUsecase interface {
	// ListComments returns all comments of a product, newest first, with
	// author display names joined in.
	ListComments(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)

	// AddComment inserts a comment and recomputes the product's cached
	// rating inside the same transaction, so readers never observe a
	// comment without its rating effect.
	AddComment(ctx context.Context, input *AddCommentInput) (*AddCommentOutput, error)

	// RecomputeRating recalculates the cached rating from the product's
	// comments and persists it. Repair endpoint; any client-supplied value
	// is ignored.
	RecomputeRating(ctx context.Context, productID uuid.UUID) (float64, error)
}

// AddCommentInput defines the data required to post a review.
type AddCommentInput struct {
	UserID    uuid.UUID `json:"userId" validate:"required"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
}

// AddCommentOutput returns the stored comment and the product rating that
// resulted from it.
type AddCommentOutput struct {
	Comment       *entity.Comment
	ProductRating float64
}
