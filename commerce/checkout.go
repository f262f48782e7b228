package commerce

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/config"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckoutResult describes a finished checkout. Exactly one of Purchase and
// AllOwned is set.
type CheckoutResult struct {
	Purchase *models.Purchase
	// AllOwned is set when every cart line was already in the library; the
	// cart and balance are left untouched. A cart with nothing new to buy
	// and a line whose product left the catalog fails with
	// ProductNotFoundError instead.
	AllOwned bool
	// Missing lists cart lines whose product left the catalog. They are
	// skipped but still counted in Totals.
	Missing []uint
	Totals  Totals
}

// Checkout turns the user's cart into a Purchase paid with method. card is
// only read for card payments.
func (e *Engine) Checkout(ctx context.Context, userID string, method models.PaymentMethod, card CardDetails) (CheckoutResult, error) {
	switch method {
	case models.PaymentCard, models.PaymentCash, models.PaymentCredit:
	default:
		return CheckoutResult{}, ErrUnknownPaymentMethod
	}

	var result CheckoutResult
	err := e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		result = CheckoutResult{}
		if len(user.Cart) == 0 {
			return ErrEmptyCart
		}
		if method == models.PaymentCard {
			if err := card.Validate(e.now()); err != nil {
				return err
			}
		}

		result.Totals = e.ComputeTotals(user.Cart)
		if method == models.PaymentCredit && e.chargePolicy == config.ChargeFullCart &&
			result.Totals.Total.GreaterThan(user.Credit) {
			return ErrInsufficientCredit
		}

		acquiredAt := e.now().Format(models.LibraryTimeLayout)
		owned := make(map[uint]bool, len(user.Library))
		for _, entry := range user.Library {
			owned[entry.ProductID] = true
		}

		var (
			details []models.PurchaseDetail
			entries []models.LibraryEntry
			netNew  []models.CartItem
		)
		for _, line := range user.Cart {
			if owned[line.ProductID] {
				continue
			}
			var product models.Product
			if err := tx.Select("id").First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					result.Missing = append(result.Missing, line.ProductID)
					continue
				}
				return fmt.Errorf("load product %d: %w", line.ProductID, err)
			}
			owned[line.ProductID] = true
			netNew = append(netNew, line)
			details = append(details, models.PurchaseDetail{ProductID: line.ProductID, Name: line.Name})
			entries = append(entries, models.LibraryEntry{
				UserID:     user.ID,
				ProductID:  line.ProductID,
				Name:       line.Name,
				AcquiredAt: acquiredAt,
			})
		}

		if len(details) == 0 {
			if len(result.Missing) > 0 {
				return &ProductNotFoundError{ProductID: result.Missing[0]}
			}
			result.AllOwned = true
			return nil
		}

		charged := result.Totals.Total
		if e.chargePolicy == config.ChargeNetNew {
			charged = e.ComputeTotals(netNew).Total
		}

		credit := user.Credit
		if method == models.PaymentCredit {
			if charged.GreaterThan(credit) {
				return ErrInsufficientCredit
			}
			credit = credit.Sub(charged)
		}

		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("add library entries: %w", err)
		}

		purchase := models.Purchase{
			UserID:    user.ID,
			Details:   details,
			Total:     charged,
			Method:    method,
			Status:    models.PurchaseCompleted,
			CreatedAt: e.now(),
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("create purchase: %w", err)
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		if err := saveUser(tx, user, credit); err != nil {
			return err
		}
		result.Purchase = &purchase
		return nil
	})
	if err != nil {
		e.log.Info("checkout rejected",
			zap.String("user_id", userID),
			zap.String("method", string(method)),
			zap.Error(err))
		return CheckoutResult{}, err
	}

	if result.AllOwned {
		e.log.Info("checkout skipped, all items owned", zap.String("user_id", userID))
		return result, nil
	}

	p := result.Purchase
	productIDs := make([]uint, len(p.Details))
	for i, d := range p.Details {
		productIDs[i] = d.ProductID
	}
	e.log.Info("checkout completed",
		zap.String("user_id", userID),
		zap.Uint("purchase_id", p.ID),
		zap.String("method", string(method)),
		zap.String("total", p.Total.StringFixed(2)),
		zap.Int("items", len(p.Details)),
		zap.Uints("missing", result.Missing))
	e.publish(ctx, events.PurchaseCompleted{
		PurchaseID: p.ID,
		UserID:     userID,
		ProductIDs: productIDs,
		Total:      p.Total.StringFixed(2),
		Method:     string(method),
		At:         p.CreatedAt,
	})
	return result, nil
}
