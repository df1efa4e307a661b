package products

import (
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
)

// ListFilters describe the inputs supported by the product list.
type ListFilters struct {
	BusinessID *uuid.UUID
	CategoryID *uuid.UUID
	Type       *enums.ProductType
	ActiveOnly bool
	Query      string
}

// ProductList wraps the paginated products plus the next page cursor.
type ProductList struct {
	Products   []models.Product `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// CreateInput captures the fields needed to create a listing.
type CreateInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid4"`
	Type        string   `json:"type" validate:"required"`
	Unit        string   `json:"unit" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	StockQty    int      `json:"stock_qty" validate:"gte=0"`
	Images      []string `json:"images" validate:"max=8,dive,url"`
}

// UpdateInput captures the mutable listing fields.
type UpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Price       *string `json:"price"`
	StockQty    *int    `json:"stock_qty" validate:"omitempty,gte=0"`
	Active      *bool   `json:"active"`
}
