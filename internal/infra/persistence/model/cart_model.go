package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. There is intentionally no
// quantity column: every row is one unit, and the quantity of a
// (user, product) pair is the number of rows holding that pair.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index:idx_cart_items_user_product"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
