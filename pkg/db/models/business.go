package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Business is a seller-side storefront. Only approved businesses can list
// products or receive orders.
type Business struct {
	ID          uuid.UUID            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OwnerUserID uuid.UUID            `gorm:"column:owner_user_id;type:uuid;not null;index" json:"owner_user_id"`
	Name        string               `gorm:"column:name;not null" json:"name"`
	Slug        string               `gorm:"column:slug;uniqueIndex;not null" json:"slug"`
	Description string               `gorm:"column:description" json:"description,omitempty"`
	Sectors     pq.StringArray       `gorm:"column:sectors;type:text[]" json:"sectors,omitempty"`
	Province    string               `gorm:"column:province" json:"province,omitempty"`
	District    string               `gorm:"column:district" json:"district,omitempty"`
	Phone       string               `gorm:"column:phone" json:"phone,omitempty"`
	Status      enums.BusinessStatus `gorm:"column:status;not null;default:pending" json:"status"`
	LogoURL     string               `gorm:"column:logo_url" json:"logo_url,omitempty"`
	BankName    string               `gorm:"column:bank_name" json:"bank_name,omitempty"`
	BankAccount string               `gorm:"column:bank_account" json:"bank_account,omitempty"`
	ApprovedAt  *time.Time           `gorm:"column:approved_at" json:"approved_at,omitempty"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}

// IsApproved reports whether the business may trade.
func (b *Business) IsApproved() bool {
	return b.Status == enums.BusinessStatusApproved
}
