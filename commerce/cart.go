package commerce

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartView is a user's cart priced for display.
type CartView struct {
	Lines  []models.CartItem `json:"lines"`
	Totals Totals            `json:"totals"`
}

// Cart returns the user's cart lines in insertion order with their totals.
func (e *Engine) Cart(ctx context.Context, userID string) (CartView, error) {
	var lines []models.CartItem
	if err := e.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&lines).Error; err != nil {
		return CartView{}, fmt.Errorf("load cart: %w", err)
	}
	if lines == nil {
		lines = []models.CartItem{}
	}
	return CartView{Lines: lines, Totals: e.ComputeTotals(lines)}, nil
}

// AddToCart snapshots the product's name and price into the cart. Adding a
// product that is already in the cart returns the existing line with added
// false. Owned products are refused with ErrAlreadyOwned.
func (e *Engine) AddToCart(ctx context.Context, userID string, productID uint) (item models.CartItem, added bool, err error) {
	err = e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ProductNotFoundError{ProductID: productID}
			}
			return fmt.Errorf("load product %d: %w", productID, err)
		}
		if !product.Available {
			return ErrProductUnavailable
		}
		if user.Owns(productID) {
			return ErrAlreadyOwned
		}
		for _, line := range user.Cart {
			if line.ProductID == productID {
				item = line
				return nil
			}
		}

		item = models.CartItem{
			UserID:    user.ID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			AddedAt:   e.now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}
		added = true
		return nil
	})
	if err != nil {
		return models.CartItem{}, false, err
	}
	if added {
		e.log.Debug("cart item added", zap.String("user_id", userID), zap.Uint("product_id", productID))
	}
	return item, added, nil
}

// RemoveFromCart deletes one line; ErrNotInCart if there was none.
func (e *Engine) RemoveFromCart(ctx context.Context, userID string, productID uint) error {
	return e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		res := tx.Where("user_id = ? AND product_id = ?", user.ID, productID).Delete(&models.CartItem{})
		if res.Error != nil {
			return fmt.Errorf("remove cart item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotInCart
		}
		return nil
	})
}

func (e *Engine) ClearCart(ctx context.Context, userID string) error {
	return e.withUser(ctx, userID, func(tx *gorm.DB, user *models.User) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
}
