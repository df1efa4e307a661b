package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a single-seller purchase. A multi-seller checkout yields one Order
// per seller business.
type Order struct {
	ID               uuid.UUID            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderNumber      string               `gorm:"column:order_number;uniqueIndex;not null" json:"order_number"`
	BuyerUserID      uuid.UUID            `gorm:"column:buyer_user_id;type:uuid;not null;index" json:"buyer_user_id"`
	SellerBusinessID uuid.UUID            `gorm:"column:seller_business_id;type:uuid;not null;index" json:"seller_business_id"`
	Status           enums.OrderStatus    `gorm:"column:status;not null" json:"status"`
	PaymentStatus    enums.PaymentStatus  `gorm:"column:payment_status;not null;default:pending" json:"payment_status"`
	PaymentMethod    enums.PaymentMethod  `gorm:"column:payment_method;not null" json:"payment_method"`
	DeliveryMethod   enums.DeliveryMethod `gorm:"column:delivery_method;not null" json:"delivery_method"`
	Subtotal         decimal.Decimal      `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
	DeliveryFee      decimal.Decimal      `gorm:"column:delivery_fee;type:numeric(12,2);not null" json:"delivery_fee"`
	CommissionAmount decimal.Decimal      `gorm:"column:commission_amount;type:numeric(12,2);not null" json:"commission_amount"`
	TotalAmount      decimal.Decimal      `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	Currency         string               `gorm:"column:currency;not null;default:PGK" json:"currency"`
	DeliveryAddress  string               `gorm:"column:delivery_address" json:"delivery_address,omitempty"`
	DeliveryProvince string               `gorm:"column:delivery_province" json:"delivery_province,omitempty"`
	DeliveryDistrict string               `gorm:"column:delivery_district" json:"delivery_district,omitempty"`
	DeliveryPhone    string               `gorm:"column:delivery_phone" json:"delivery_phone,omitempty"`
	DeliveryNotes    string               `gorm:"column:delivery_notes" json:"delivery_notes,omitempty"`
	CancelledBy      *uuid.UUID           `gorm:"column:cancelled_by;type:uuid" json:"cancelled_by,omitempty"`
	CancelReason     string               `gorm:"column:cancel_reason" json:"cancel_reason,omitempty"`
	ConfirmedAt      *time.Time           `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
	DeliveredAt      *time.Time           `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
	Items            []OrderItem          `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt        time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
