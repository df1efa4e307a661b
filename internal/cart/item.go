package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a single cart entry. UnitPrice is advisory; checkout re-reads the
// authoritative price from the product row.
type Item struct {
	ProductID  uuid.UUID       `json:"product_id"`
	BusinessID uuid.UUID       `json:"business_id"`
	Name       string          `json:"name"`
	Image      string          `json:"image,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// LineTotal returns unit_price multiplied by quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
