package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
)

// Review is feedback left by a buyer against a product they received through a
// delivered order. Reviews start in pending moderation.
type Review struct {
	ID               uuid.UUID          `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	OrderID          uuid.UUID          `gorm:"column:order_id;type:uuid;not null;index" json:"order_id"`
	ReviewerUserID   uuid.UUID          `gorm:"column:reviewer_user_id;type:uuid;not null;index" json:"reviewer_user_id"`
	TargetBusinessID uuid.UUID          `gorm:"column:target_business_id;type:uuid;not null;index" json:"target_business_id"`
	TargetProductID  uuid.UUID          `gorm:"column:target_product_id;type:uuid;not null;index" json:"target_product_id"`
	Rating           int                `gorm:"column:rating;not null" json:"rating"`
	Comment          string             `gorm:"column:comment" json:"comment,omitempty"`
	VerifiedPurchase bool               `gorm:"column:verified_purchase;not null;default:false" json:"verified_purchase"`
	Status           enums.ReviewStatus `gorm:"column:status;not null;default:pending" json:"status"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
