package cartControllers

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/common"
	"github.com/gin-gonic/gin"
)

// POST /user/cart/:product_id
func AddCartItem(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		productID, ok := common.ParseID(c, "product_id")
		if !ok {
			return
		}

		item, added, err := engine.AddToCart(c.Request.Context(), userID, productID)
		if err != nil {
			common.RespondError(c, err)
			return
		}
		if !added {
			c.JSON(http.StatusOK, gin.H{"message": "Product already in cart", "item": item})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		productID, ok := common.ParseID(c, "product_id")
		if !ok {
			return
		}

		if err := engine.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		if err := engine.ClearCart(c.Request.Context(), userID); err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetUserCart(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := common.UserID(c)
		if !ok {
			return
		}
		view, err := engine.Cart(c.Request.Context(), userID)
		if err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /admin/users/:id/cart
func GetAdminUserCart(engine *commerce.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
			return
		}
		view, err := engine.Cart(c.Request.Context(), userID)
		if err != nil {
			common.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
