package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var sortColumns = map[string]string{
	"name":         "name",
	"price":        "price",
	"rating":       "rating",
	"release_date": "release_date",
	"created_at":   "created_at",
}

// filterProducts applies the listing query parameters shared by the admin
// and store listings.
func filterProducts(c *gin.Context, query *gorm.DB) (*gorm.DB, error) {
	// 1️⃣ Text search
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(genre) LIKE ?", like, like, like)
	}

	// 2️⃣ Exact filters
	if category := c.Query("category"); category != "" {
		if !models.ProductCategory(category).Valid() {
			return nil, errors.New("invalid category")
		}
		query = query.Where("category = ?", category)
	}
	if genre := c.Query("genre"); genre != "" {
		query = query.Where("LOWER(genre) = ?", strings.ToLower(genre))
	}
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		sid, err := strconv.ParseUint(supplierID, 10, 64)
		if err != nil {
			return nil, errors.New("invalid supplier_id")
		}
		query = query.Where("supplier_id = ?", uint(sid))
	}

	// 3️⃣ Price range
	if minPrice := c.Query("min_price"); minPrice != "" {
		mp, err := decimal.NewFromString(minPrice)
		if err != nil {
			return nil, errors.New("invalid min_price")
		}
		query = query.Where("price >= ?", mp)
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		mp, err := decimal.NewFromString(maxPrice)
		if err != nil {
			return nil, errors.New("invalid max_price")
		}
		query = query.Where("price <= ?", mp)
	}

	// 4️⃣ Sorting, whitelisted columns only
	column, ok := sortColumns[c.DefaultQuery("sort_by", "created_at")]
	if !ok {
		return nil, errors.New("invalid sort_by")
	}
	order := strings.ToLower(c.DefaultQuery("order", "desc"))
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	return query.Order(column + " " + order).Order("id " + order), nil
}

// GET /admin/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, err := filterProducts(c, db.Model(&models.Product{}).Preload("Supplier"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		products := []models.Product{}
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
