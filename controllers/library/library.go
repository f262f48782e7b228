package libraryControllers

import (
	"net/http"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RefundRequest struct {
	Method string                 `json:"method" binding:"required"` // credit or external-payout
	Payout commerce.PayoutDetails `json:"payout"`
}

// GET /user/library
func GetLibrary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}

		entries := []models.LibraryEntry{}
		if err := db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /user/library/:product_id/refund
func RefundProduct(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		productID, ok := common.ParseID(c, "product_id")
		if !ok {
			return
		}

		var req RefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method := commerce.RefundMethod(strings.ToLower(strings.TrimSpace(req.Method)))

		if err := engine.Refund(c.Request.Context(), userID, productID, method, req.Payout); err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Refund completed"})
	}
}
