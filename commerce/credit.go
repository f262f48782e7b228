package commerce

import (
	"context"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TopUpCredit adds amount to the user's credit after a simulated card
// charge and returns the new balance.
func (e *Engine) TopUpCredit(ctx context.Context, userID string, amount decimal.Decimal, card CardDetails) (decimal.Decimal, error) {
	if !amount.IsPositive() || !amount.Round(2).Equal(amount) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if err := card.Validate(e.now()); err != nil {
		return decimal.Decimal{}, err
	}

	var balance decimal.Decimal
	err := e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		if err := saveUser(tx, user, user.Credit.Add(amount)); err != nil {
			return err
		}
		balance = user.Credit
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}

	e.log.Info("credit topped up",
		zap.String("user_id", userID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("balance", balance.StringFixed(2)))
	return balance, nil
}
