package routes

import (
	cartControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/cart"
	libraryControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/library"
	purchaseControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/purchase"
	userControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/user"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware and an active account.
func SetupUserRoutes(r *gin.Engine, d Dependencies) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Tokens), middleware.ActiveAccount(d.DB))
	{
		// ──────────────── Account ────────────────
		userGroup.GET("/", userControllers.GetUser(d.DB))       // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(d.DB))    // PUT /user/
		userGroup.DELETE("/", userControllers.DeleteUser(d.DB)) // DELETE /user/
		userGroup.PUT("/password", userControllers.ChangePassword(d.DB))
		userGroup.POST("/credit", userControllers.TopUpCredit(d.Engine))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(d.Engine))
			cartGroup.POST("/:product_id", cartControllers.AddCartItem(d.Engine))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Engine))
			cartGroup.DELETE("", cartControllers.ClearUserCart(d.Engine))
		}

		// ──────────────── Checkout & History ────────────────
		userGroup.POST("/checkout", purchaseControllers.Checkout(d.Engine))
		userGroup.GET("/purchases", purchaseControllers.GetUserPurchases(d.DB))

		// ──────────────── Library ────────────────
		libraryGroup := userGroup.Group("/library")
		{
			libraryGroup.GET("", libraryControllers.GetLibrary(d.DB))
			libraryGroup.POST("/:product_id/refund", libraryControllers.RefundProduct(d.Engine))
		}
	}
}
