package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string
type PurchaseStatus string

const (
	PaymentCard   PaymentMethod = "Card"
	PaymentCash   PaymentMethod = "Cash"
	PaymentCredit PaymentMethod = "Credit"

	PurchaseCompleted PurchaseStatus = "Completed"
)

// Purchase is the append-only record of a completed checkout.
type Purchase struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    string           `gorm:"not null;index" json:"user_id"`
	Details   []PurchaseDetail `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"details"`
	Total     decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"total"`
	Method    PaymentMethod    `gorm:"type:VARCHAR(20);not null" json:"method"`
	Status    PurchaseStatus   `gorm:"type:VARCHAR(20);default:'Completed'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

type PurchaseDetail struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	PurchaseID uint   `gorm:"index" json:"-"`
	ProductID  uint   `json:"product_id"`
	Name       string `json:"name"`
}

// PendingPayout is written for external-payout refunds when payouts are
// tracked instead of simulated.
type PendingPayout struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       string          `gorm:"not null;index" json:"user_id"`
	ProductID    uint            `json:"product_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	HolderName   string          `json:"holder_name"`
	BankName     string          `json:"bank_name"`
	AccountLast4 string          `gorm:"type:VARCHAR(4)" json:"account_last4"`
	CreatedAt    time.Time       `json:"created_at"`
}
