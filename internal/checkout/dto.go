package checkout

import (
	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input captures the data required to convert a cart into orders.
type Input struct {
	BuyerUserID      uuid.UUID
	PaymentMethod    enums.PaymentMethod
	DeliveryMethod   enums.DeliveryMethod
	DeliveryAddress  string
	DeliveryProvince string
	DeliveryDistrict string
	DeliveryPhone    string
	DeliveryNotes    string
}

// Warning describes a non-fatal adjustment applied during checkout.
type Warning struct {
	SellerBusinessID uuid.UUID       `json:"seller_business_id"`
	ProductID        uuid.UUID       `json:"product_id,omitempty"`
	Code             string          `json:"code"`
	Message          string          `json:"message"`
	OldPrice         decimal.Decimal `json:"old_price,omitempty"`
	NewPrice         decimal.Decimal `json:"new_price,omitempty"`
}

// Warning codes emitted by the orchestrator.
const (
	WarnRepriced    = "repriced"
	WarnGroupFailed = "group_failed"
)

// CreatedOrder summarises one persisted order.
type CreatedOrder struct {
	OrderID          uuid.UUID         `json:"order_id"`
	OrderNumber      string            `json:"order_number"`
	SellerBusinessID uuid.UUID         `json:"seller_business_id"`
	Status           enums.OrderStatus `json:"status"`
	TotalAmount      decimal.Decimal   `json:"total_amount"`
}

// Result reports the outcome of a checkout run.
type Result struct {
	Orders   []CreatedOrder `json:"orders"`
	Warnings []Warning      `json:"warnings,omitempty"`
}
