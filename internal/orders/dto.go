package orders

import (
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
)

// ListFilters describe the inputs supported by order listings.
type ListFilters struct {
	Status        *enums.OrderStatus
	PaymentStatus *enums.PaymentStatus
}

// OrderList wraps the paginated orders plus the next page cursor.
type OrderList struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// SellerTransitionInput captures a seller-side status change request.
type SellerTransitionInput struct {
	OrderID          uuid.UUID
	SellerBusinessID uuid.UUID
	ActorUserID      uuid.UUID
	Target           enums.OrderStatus
	CancelReason     string
}
