package commerce

import (
	"strings"
	"time"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
)

// CardDetails is the proof of payment for card checkouts and credit top-ups.
// Charges are simulated; nothing here leaves the process.
type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVV        string `json:"cvv"`
}

// Validate checks field shapes, then expiry against now. A card expiring in
// the current month is still valid.
func (c CardDetails) Validate(now time.Time) error {
	if strings.TrimSpace(c.HolderName) == "" {
		return ErrInvalidCardFields
	}
	if len(c.Number) != 16 || !allDigits(c.Number) {
		return ErrInvalidCardFields
	}
	if len(c.CVV) < 3 || len(c.CVV) > 4 || !allDigits(c.CVV) {
		return ErrInvalidCardFields
	}
	if c.ExpMonth < 1 || c.ExpMonth > 12 {
		return ErrInvalidCardFields
	}
	if c.ExpYear < now.Year() || (c.ExpYear == now.Year() && c.ExpMonth < int(now.Month())) {
		return ErrExpiredCard
	}
	return nil
}

type RefundMethod string

const (
	RefundCredit         RefundMethod = "credit"
	RefundExternalPayout RefundMethod = "external-payout"
)

// PayoutDetails identifies the bank account of an external-payout refund.
type PayoutDetails struct {
	HolderName    string `json:"holder_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
}

func (p PayoutDetails) Validate() error {
	if strings.TrimSpace(p.HolderName) == "" ||
		strings.TrimSpace(p.AccountNumber) == "" ||
		strings.TrimSpace(p.BankName) == "" {
		return ErrIncompleteBankDetails
	}
	return nil
}

func (p PayoutDetails) accountLast4() string {
	n := strings.TrimSpace(p.AccountNumber)
	if len(n) <= 4 {
		return n
	}
	return n[len(n)-4:]
}

// ParsePaymentMethod accepts the method names case-insensitively.
func ParsePaymentMethod(s string) (models.PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "card":
		return models.PaymentCard, nil
	case "cash":
		return models.PaymentCash, nil
	case "credit":
		return models.PaymentCredit, nil
	default:
		return "", ErrUnknownPaymentMethod
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
