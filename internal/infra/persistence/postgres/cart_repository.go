// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
// Quantity is always derived from the number of rows holding a
// (user, product) pair, so every mutation is expressed in whole rows.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// AddUnits inserts n rows for the (user, product) pair in a single INSERT,
// so a mid-batch failure leaves no partial units behind.
func (repo *cartRepository) AddUnits(ctx context.Context, userID, productID uuid.UUID, n int) error {
	if n < 1 {
		return domainerrors.ErrCartQuantityInvalid.WrapMessage("quantity must be at least 1")
	}

	items := make([]model.CartItemModel, n)
	for i := range items {
		items[i] = model.CartItemModel{
			UserID:    userID,
			ProductID: productID,
		}
	}

	if err := repo.db.WithContext(ctx).Create(&items).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid cart reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cart units")
	}

	return nil
}

// CountUnits returns the number of rows currently held for the pair.
func (repo *cartRepository) CountUnits(ctx context.Context, userID, productID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart units")
	}

	return int(count), nil
}

// RemoveUnits deletes at most limit rows for the pair, oldest first, and
// returns how many were actually deleted. PostgreSQL has no DELETE ... LIMIT,
// so the rows to drop are picked through an id subquery.
func (repo *cartRepository) RemoveUnits(ctx context.Context, userID, productID uuid.UUID, limit int) (int, error) {
	if limit < 1 {
		return 0, domainerrors.ErrCartQuantityInvalid.WrapMessage("quantity must be at least 1")
	}

	subQuery := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Order("created_at ASC").
		Limit(limit)

	result := repo.db.WithContext(ctx).
		Where("id IN (?)", subQuery).
		Delete(&model.CartItemModel{})

	if err := result.Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to remove cart units")
	}

	return int(result.RowsAffected), nil
}

// cartEntryRow is the scan target for the grouped cart query.
type cartEntryRow struct {
	ProductID   uuid.UUID
	Title       string
	Description string
	Price       float64
	Discount    int
	Rating      float64
	CategoryID  uuid.UUID
	Subcategory string
	Image       []byte
	Quantity    int
}

// ListEntries returns the user's cart collapsed into one entry per product
// with its unit count, ordered by ascending discounted price.
func (repo *cartRepository) ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	var rows []cartEntryRow

	if err := repo.db.WithContext(ctx).
		Table("cart_items").
		Select("products.id AS product_id, products.title, products.description, products.price, " +
			"products.discount, products.rating, products.category_id, products.subcategory, " +
			"products.image, COUNT(cart_items.id) AS quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Group("products.id").
		Order("products.price * (1 - products.discount / 100.0) ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	entries := make([]*entity.CartEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &entity.CartEntry{
			Product: entity.Product{
				ID:          row.ProductID,
				Title:       row.Title,
				Description: row.Description,
				Price:       row.Price,
				Discount:    row.Discount,
				Rating:      row.Rating,
				CategoryID:  row.CategoryID,
				Subcategory: row.Subcategory,
				Image:       row.Image,
			},
			Quantity: row.Quantity,
		})
	}

	return entries, nil
}

// ClearByUser removes every cart row the user holds. Clearing an already
// empty cart is not an error.
func (repo *cartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}
