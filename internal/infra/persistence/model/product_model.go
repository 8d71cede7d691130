package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The structured specification is
// stored as a JSONB column through GORM's json serializer, and the image lives
// in the row as bytea. The rating column is a derived cache maintained inside
// the comment-insert transaction.
type ProductModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text"`
	Specification []entity.SpecificationGroup `gorm:"type:jsonb;serializer:json"`
	Price         float64                     `gorm:"type:numeric(12,2);not null"`
	Discount      int                         `gorm:"not null;default:0;check:discount >= 0 AND discount <= 100"`
	Rating        float64                     `gorm:"type:numeric(2,1);not null;default:0"`
	CategoryID    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Subcategory   string                      `gorm:"type:varchar(100)"`
	Image         []byte                      `gorm:"type:bytea"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	CartItems []CartItemModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Comments  []CommentModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel mirrors the 'categories' table, a static lookup.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
