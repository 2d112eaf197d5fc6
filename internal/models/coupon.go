package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon is a discount code. Codes are stored uppercased; lookups
// normalize input to upper before matching.
type Coupon struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Code        string         `gorm:"uniqueIndex;not null" json:"code"`
	Type        string         `gorm:"not null" json:"type"`                                      // fixed / percentage
	Value       Money          `gorm:"type:decimal(20,2);not null" json:"value"`                  // amount or percent (0-100)
	MinPurchase Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase"` // 0 means no threshold
	UsageLimit  int            `gorm:"not null;default:0" json:"usage_limit"`                     // 0 means unlimited
	UsedCount   int            `gorm:"not null;default:0" json:"used_count"`
	ExpiresAt   *time.Time     `gorm:"index" json:"expires_at"`
	IsActive    bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Coupon) TableName() string {
	return "coupons"
}
