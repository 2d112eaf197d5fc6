package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment tracks one attempt against the hosted payment widget.
type Payment struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	OrderID       uint           `gorm:"index;not null" json:"order_id"`
	Provider      string         `gorm:"type:varchar(32);not null" json:"provider"`
	Status        string         `gorm:"index;not null" json:"status"`
	Amount        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`
	Currency      string         `gorm:"not null" json:"currency"`
	WidgetToken   string         `gorm:"type:varchar(128)" json:"widget_token,omitempty"` // Snap redirect token
	TransactionID string         `gorm:"type:varchar(128);index" json:"transaction_id,omitempty"`
	RawCallback   JSON           `gorm:"type:json" json:"-"`
	PaidAt        *time.Time     `gorm:"index" json:"paid_at"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Payment) TableName() string {
	return "payments"
}
