// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// commentRow is the scan target for the author-joined comment query.
type commentRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
	FirstName string
	LastName  string
}

// ListByProduct retrieves all comments for a product, newest first, joined
// with the author's display name.
func (repo *commentRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	var rows []commentRow

	if err := repo.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.user_id, comments.product_id, comments.text, comments.rating, "+
			"comments.created_at, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.product_id = ?", productID).
		Order("comments.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, &entity.Comment{
			ID:              row.ID,
			UserID:          row.UserID,
			ProductID:       row.ProductID,
			Text:            row.Text,
			Rating:          row.Rating,
			CreatedAt:       row.CreatedAt,
			AuthorFirstName: row.FirstName,
			AuthorLastName:  row.LastName,
		})
	}

	return comments, nil
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid comment reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrRatingOutOfRange.WrapMessage("rating outside the allowed range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCommentCreationFailed.WrapMessage("missing required comment information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	// Update the entity with generated values
	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// AverageRatingByProduct returns ROUND(AVG(rating), 1) over all the product's
// comments. Products without comments yield 0.
func (repo *commentRepository) AverageRatingByProduct(ctx context.Context, productID uuid.UUID) (float64, error) {
	var avg float64

	if err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select("COALESCE(ROUND(AVG(rating)::numeric, 1), 0)").
		Where("product_id = ?", productID).
		Scan(&avg).Error; err != nil {
		return 0, errors.Wrap(err, "failed to compute average rating")
	}

	return avg, nil
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Text:      data.Text,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
	}
}
