package commerce

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrExpiredCard           = errors.New("card is expired")
	ErrInvalidCardFields     = errors.New("invalid card details")
	ErrInsufficientCredit    = errors.New("insufficient credit")
	ErrNotOwned              = errors.New("product is not in the library")
	ErrIncompleteBankDetails = errors.New("account holder, account number and bank name are required")
	ErrProductNotFound       = errors.New("product not found")

	ErrUserNotFound         = errors.New("user not found")
	ErrAccountInactive      = errors.New("account is inactive")
	ErrAlreadyOwned         = errors.New("product is already in the library")
	ErrProductUnavailable   = errors.New("product is not available")
	ErrNotInCart            = errors.New("product is not in the cart")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrInvalidRefundMethod  = errors.New("unknown refund method")
	ErrConcurrentUpdate     = errors.New("account was modified concurrently, retry")
)

// ProductNotFoundError names the catalog id a cart or library line points at
// that no longer exists. It matches ErrProductNotFound with errors.Is.
type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}
