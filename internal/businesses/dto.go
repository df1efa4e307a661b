package businesses

import (
	"github.com/emabi2002/pngsme/pkg/db/models"
	"github.com/emabi2002/pngsme/pkg/enums"
)

// ListFilters describe the inputs supported by the business list.
type ListFilters struct {
	Status   *enums.BusinessStatus
	Province string
	Sector   string
	Query    string
}

// BusinessList wraps the paginated businesses plus the next page cursor.
type BusinessList struct {
	Businesses []models.Business `json:"businesses"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// RegisterInput captures the fields needed to create a business.
type RegisterInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Sectors     []string `json:"sectors" validate:"max=5"`
	Province    string   `json:"province" validate:"max=80"`
	District    string   `json:"district" validate:"max=80"`
	Phone       string   `json:"phone" validate:"max=32"`
	BankName    string   `json:"bank_name" validate:"max=120"`
	BankAccount string   `json:"bank_account" validate:"max=64"`
}
