package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line of a user's cart. Name and price are copied from the
// product when the line is added; each product appears at most once per cart.
type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	UserID    string          `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"-"`
	ProductID uint            `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	AddedAt   time.Time       `json:"added_at"`
}
