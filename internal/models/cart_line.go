package models

import (
	"time"

	"gorm.io/gorm"
)

// CartLine is one persisted cart line. Name, price and image are
// snapshots taken when the product was added; the live product may
// change afterwards without affecting lines already in a cart.
// One line per (session, product) pair.
type CartLine struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID uint           `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Name      string         `gorm:"not null" json:"name"`
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Image     string         `gorm:"type:varchar(500)" json:"image"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (CartLine) TableName() string {
	return "cart_lines"
}
