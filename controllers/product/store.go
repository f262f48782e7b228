package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StoreProduct is a catalog product as a shopper sees it. The flags are
// only ever true for identified callers.
type StoreProduct struct {
	models.Product
	InLibrary bool `json:"in_library"`
	InCart    bool `json:"in_cart"`
}

// shopperState loads the product ids the caller owns and has in the cart.
// Anonymous callers get empty sets.
func shopperState(c *gin.Context, db *gorm.DB) (owned, carted map[uint]bool, err error) {
	owned, carted = map[uint]bool{}, map[uint]bool{}
	userID := c.GetString("user_id")
	if userID == "" {
		return owned, carted, nil
	}

	var ids []uint
	if err := db.Model(&models.LibraryEntry{}).Where("user_id = ?", userID).Pluck("product_id", &ids).Error; err != nil {
		return nil, nil, err
	}
	for _, id := range ids {
		owned[id] = true
	}

	ids = nil
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Pluck("product_id", &ids).Error; err != nil {
		return nil, nil, err
	}
	for _, id := range ids {
		carted[id] = true
	}
	return owned, carted, nil
}

// GET /store/products
func GetStoreProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, err := filterProducts(c, db.Model(&models.Product{}).Where("available = ?", true))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		owned, carted, err := shopperState(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library"})
			return
		}

		out := make([]StoreProduct, len(products))
		for i, p := range products {
			out[i] = StoreProduct{Product: p, InLibrary: owned[p.ID], InCart: carted[p.ID]}
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /store/products/:id
func GetStoreProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := common.ParseID(c, "id")
		if !ok {
			return
		}

		var product models.Product
		if err := db.Preload("Supplier").Where("available = ?", true).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		owned, carted, err := shopperState(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch library"})
			return
		}
		c.JSON(http.StatusOK, StoreProduct{Product: product, InLibrary: owned[product.ID], InCart: carted[product.ID]})
	}
}
