package models

import (
	"time"

	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/google/uuid"
)

// User is an account on the marketplace. A user may own at most one business.
type User struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string           `gorm:"column:email;uniqueIndex;not null" json:"email"`
	PasswordHash string           `gorm:"column:password_hash;not null" json:"-"`
	FullName     string           `gorm:"column:full_name;not null" json:"full_name"`
	Phone        string           `gorm:"column:phone" json:"phone,omitempty"`
	Role         enums.UserRole   `gorm:"column:role;not null;default:buyer" json:"role"`
	Status       enums.UserStatus `gorm:"column:status;not null;default:active" json:"status"`
	Province     string           `gorm:"column:province" json:"province,omitempty"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
