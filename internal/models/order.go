package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a checkout snapshot of a cart.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`
	SessionID       string         `gorm:"type:varchar(64);index" json:"-"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"index;not null" json:"customer_email"`
	CustomerPhone   string         `gorm:"type:varchar(32)" json:"customer_phone"`
	Status          string         `gorm:"index;not null" json:"status"`
	Currency        string         `gorm:"not null" json:"currency"`
	Subtotal        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"`
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	CouponID        *uint          `gorm:"index" json:"coupon_id,omitempty"`
	CouponCode      string         `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`
	ShippingAddress JSON           `gorm:"type:json" json:"shipping_address"`
	Courier         string         `gorm:"type:varchar(64)" json:"courier,omitempty"`
	TrackingNumber  string         `gorm:"type:varchar(64)" json:"tracking_number,omitempty"`
	Note            string         `gorm:"type:text" json:"note,omitempty"`
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`
	ExpiresAt       *time.Time     `gorm:"index" json:"expires_at"`
	PaidAt          *time.Time     `gorm:"index" json:"paid_at"`
	CanceledAt      *time.Time     `gorm:"index" json:"canceled_at"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
