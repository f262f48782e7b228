package commerce

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/config"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Refund removes productID from the user's library. The credit method pays
// back the product's current catalog price; external payouts are simulated
// and move no balance. Purchase history is left as it is.
func (e *Engine) Refund(ctx context.Context, userID string, productID uint, method RefundMethod, payout PayoutDetails) error {
	switch method {
	case RefundCredit:
	case RefundExternalPayout:
		if err := payout.Validate(); err != nil {
			return err
		}
	default:
		return ErrInvalidRefundMethod
	}

	var amount decimal.Decimal
	err := e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		if !user.Owns(productID) {
			return ErrNotOwned
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{ProductID: productID}
			}
			return fmt.Errorf("load product %d: %w", productID, err)
		}
		amount = product.Price

		if err := tx.Where("user_id = ? AND product_id = ?", user.ID, productID).
			Delete(&models.LibraryEntry{}).Error; err != nil {
			return fmt.Errorf("remove library entry: %w", err)
		}

		credit := user.Credit
		switch method {
		case RefundCredit:
			credit = credit.Add(product.Price)
		case RefundExternalPayout:
			if e.payoutPolicy == config.PayoutPendingLedger {
				pending := models.PendingPayout{
					UserID:       user.ID,
					ProductID:    productID,
					Amount:       product.Price,
					HolderName:   payout.HolderName,
					BankName:     payout.BankName,
					AccountLast4: payout.accountLast4(),
					CreatedAt:    e.now(),
				}
				if err := tx.Create(&pending).Error; err != nil {
					return fmt.Errorf("record pending payout: %w", err)
				}
			}
		}
		return saveUser(tx, user, credit)
	})
	if err != nil {
		e.log.Info("refund rejected",
			zap.String("user_id", userID),
			zap.Uint("product_id", productID),
			zap.String("method", string(method)),
			zap.Error(err))
		return err
	}

	e.log.Info("refund completed",
		zap.String("user_id", userID),
		zap.Uint("product_id", productID),
		zap.String("method", string(method)),
		zap.String("amount", amount.StringFixed(2)))
	e.publish(ctx, events.LibraryRefunded{
		UserID:    userID,
		ProductID: productID,
		Method:    string(method),
		Amount:    amount.StringFixed(2),
		At:        e.now(),
	})
	return nil
}
