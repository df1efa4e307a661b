package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a frozen line of an order. UnitPrice is the price at checkout
// time, not the live product price.
type OrderItem struct {
	ID         uuid.UUID             `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID    uuid.UUID             `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	ProductID  uuid.UUID             `gorm:"column:product_id;type:uuid;not null;index" json:"product_id"`
	Quantity   int                   `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice  decimal.Decimal       `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal       `gorm:"column:total_price;type:numeric(12,2);not null" json:"total_price"`
	Snapshot   types.ProductSnapshot `gorm:"column:snapshot;type:jsonb;serializer:json" json:"snapshot"`
	CreatedAt  time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
