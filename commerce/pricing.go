package commerce

import (
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat sales tax applied to every cart.
var DefaultTaxRate = decimal.RequireFromString("0.16")

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals prices lines at DefaultTaxRate.
func ComputeTotals(lines []models.CartItem) Totals {
	return ComputeTotalsAt(lines, DefaultTaxRate)
}

// ComputeTotalsAt sums the unit prices of lines and adds tax at rate, rounded
// half away from zero to cents.
func ComputeTotalsAt(lines []models.CartItem, rate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice)
	}
	tax := subtotal.Mul(rate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
