package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryGame       ProductCategory = "Game"
	CategoryDLC        ProductCategory = "DLC"
	CategoryMembership ProductCategory = "Membership"
)

// Valid reports whether c is one of the catalog categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryGame, CategoryDLC, CategoryMembership:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Category    ProductCategory `gorm:"type:VARCHAR(20);not null" json:"category"`
	Genre       string          `json:"genre"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ReleaseDate string          `json:"release_date"` // YYYY-MM-DD
	Rating      decimal.Decimal `gorm:"type:decimal(3,2);default:0" json:"rating"`
	Available   bool            `gorm:"not null" json:"available"`
	SupplierID  uint            `gorm:"index" json:"supplier_id"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}
