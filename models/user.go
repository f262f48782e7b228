package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserStatus string

const (
	UserActive   UserStatus = "Active"
	UserInactive UserStatus = "Inactive"
)

type User struct {
	ID           string          `gorm:"primaryKey" json:"id"`
	Username     string          `gorm:"unique;not null" json:"username"`
	Email        string          `gorm:"unique;not null" json:"email"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Country      string          `json:"country,omitempty"`
	BirthDate    string          `json:"birth_date,omitempty"` // YYYY-MM-DD
	Status       UserStatus      `gorm:"type:VARCHAR(10);default:'Active'" json:"status"`
	Credit       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"credit"`
	Version      int             `gorm:"not null;default:0" json:"-"` // bumped on every credit/library commit
	Cart         []CartItem      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Library      []LibraryEntry  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"library,omitempty"`
	Purchases    []Purchase      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"purchases,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Owns reports whether productID is in the user's loaded library.
func (u *User) Owns(productID uint) bool {
	for _, e := range u.Library {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// InCart reports whether productID is in the user's loaded cart.
func (u *User) InCart(productID uint) bool {
	for _, item := range u.Cart {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
