package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a listing owned by a business. Price is the authoritative unit
// price in PGK; cart-held prices are advisory only.
type Product struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	BusinessID  uuid.UUID         `gorm:"column:business_id;type:uuid;not null;index" json:"business_id"`
	CategoryID  *uuid.UUID        `gorm:"column:category_id;type:uuid;index" json:"category_id,omitempty"`
	Name        string            `gorm:"column:name;not null" json:"name"`
	Description string            `gorm:"column:description" json:"description,omitempty"`
	Type        enums.ProductType `gorm:"column:type;not null;default:product" json:"type"`
	Unit        enums.ProductUnit `gorm:"column:unit;not null;default:piece" json:"unit"`
	Price       decimal.Decimal   `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	StockQty    int               `gorm:"column:stock_qty;not null;default:0" json:"stock_qty"`
	Active      bool              `gorm:"column:active;not null;default:true" json:"active"`
	Images      []ProductImage    `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// PrimaryImage returns the first image URL, or empty when none exist.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
