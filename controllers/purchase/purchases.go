package purchaseControllers

import (
	"errors"
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /user/purchases
func GetUserPurchases(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}

		var purchases []models.Purchase
		if err := db.
			Where("user_id = ?", userID).
			Preload("Details").
			Order("created_at DESC, id DESC").
			Find(&purchases).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
			return
		}
		c.JSON(http.StatusOK, purchases)
	}
}

// GET /admin/purchases
func GetAllPurchases(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Details").Order("created_at DESC, id DESC")
		if userID := c.Query("user_id"); userID != "" {
			query = query.Where("user_id = ?", userID)
		}
		if method := c.Query("method"); method != "" {
			query = query.Where("method = ?", method)
		}

		var purchases []models.Purchase
		if err := query.Find(&purchases).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
			return
		}
		c.JSON(http.StatusOK, purchases)
	}
}

// GET /admin/purchases/:id
func GetPurchaseByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var purchase models.Purchase
		if err := db.Preload("Details").First(&purchase, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchase"})
			return
		}
		c.JSON(http.StatusOK, purchase)
	}
}

// DELETE /admin/purchases/:id
//
// Administrative cleanup only. Libraries and balances are left as they are.
func DeletePurchase(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var deleted int64
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("purchase_id = ?", id).Delete(&models.PurchaseDetail{}).Error; err != nil {
				return err
			}
			res := tx.Delete(&models.Purchase{}, id)
			deleted = res.RowsAffected
			return res.Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
			return
		}
		if deleted == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
	}
}

// GET /admin/payouts
func GetPendingPayouts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payouts []models.PendingPayout
		if err := db.Order("created_at DESC, id DESC").Find(&payouts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payouts"})
			return
		}
		c.JSON(http.StatusOK, payouts)
	}
}
