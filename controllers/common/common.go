// Package common holds the request helpers shared by the controllers.
package common

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/gin-gonic/gin"
)

// UserID returns the caller set by the token middleware. It writes a 401
// and returns false for anonymous requests.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// ParseID reads a positive numeric path parameter, answering 400 when it is
// not one.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// StatusFor maps store errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, commerce.ErrEmptyCart),
		errors.Is(err, commerce.ErrExpiredCard),
		errors.Is(err, commerce.ErrInvalidCardFields),
		errors.Is(err, commerce.ErrIncompleteBankDetails),
		errors.Is(err, commerce.ErrInvalidAmount),
		errors.Is(err, commerce.ErrUnknownPaymentMethod),
		errors.Is(err, commerce.ErrInvalidRefundMethod),
		errors.Is(err, commerce.ErrProductUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, commerce.ErrNotOwned),
		errors.Is(err, commerce.ErrProductNotFound),
		errors.Is(err, commerce.ErrUserNotFound),
		errors.Is(err, commerce.ErrNotInCart):
		return http.StatusNotFound
	case errors.Is(err, commerce.ErrAccountInactive):
		return http.StatusForbidden
	case errors.Is(err, commerce.ErrInsufficientCredit),
		errors.Is(err, commerce.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, commerce.ErrAlreadyOwned):
		return http.StatusOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as JSON. Already-owned products are reported as a
// warning on a 200, everything unexpected as a generic 500.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusOK:
		c.JSON(status, gin.H{"warning": err.Error()})
	case http.StatusInternalServerError:
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "Internal server error"})
	case http.StatusServiceUnavailable:
		c.JSON(status, gin.H{"error": "Request cancelled, try again"})
	default:
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
