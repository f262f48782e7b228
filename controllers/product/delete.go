package productcontroller

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DELETE /admin/products/:id
//
// Soft delete. Cart lines and library entries that point at the product are
// kept; checkout skips such lines and refunds report the product missing.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		res := db.Delete(&models.Product{}, id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
