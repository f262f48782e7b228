package adminController

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type methodRevenue struct {
	Method    models.PaymentMethod `json:"method"`
	Purchases int64                `json:"purchases"`
	Revenue   decimal.Decimal      `json:"revenue"`
}

// GET /admin/stats
func GetStoreStats(db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users, products, purchases, ownedItems int64
		counts := []struct {
			model interface{}
			dst   *int64
		}{
			{&models.User{}, &users},
			{&models.Product{}, &products},
			{&models.Purchase{}, &purchases},
			{&models.LibraryEntry{}, &ownedItems},
		}
		for _, q := range counts {
			if err := db.Model(q.model).Count(q.dst).Error; err != nil {
				log.Error("failed to count rows", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
				return
			}
		}

		var rows []struct {
			Method    models.PaymentMethod
			Purchases int64
			Revenue   decimal.NullDecimal
		}
		if err := db.Model(&models.Purchase{}).
			Select("method, COUNT(*) AS purchases, SUM(total) AS revenue").
			Group("method").
			Order("method").
			Scan(&rows).Error; err != nil {
			log.Error("failed to sum revenue", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		byMethod := make([]methodRevenue, 0, len(rows))
		total := decimal.Zero
		for _, r := range rows {
			revenue := r.Revenue.Decimal.Round(2)
			total = total.Add(revenue)
			byMethod = append(byMethod, methodRevenue{Method: r.Method, Purchases: r.Purchases, Revenue: revenue})
		}

		c.JSON(http.StatusOK, gin.H{
			"users":       users,
			"products":    products,
			"purchases":   purchases,
			"owned_items": ownedItems,
			"revenue":     total,
			"by_method":   byMethod,
		})
	}
}
