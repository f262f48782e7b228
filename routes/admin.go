package routes

import (
	adminController "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/admin"
	cartControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/cart"
	productcontroller "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/product"
	purchaseControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/purchase"
	userControllers "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/user"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, d Dependencies) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.APIKey))
	{
		adminGroup.GET("/stats", adminController.GetStoreStats(d.DB, d.Log))

		// ─────────── User Management ───────────
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(d.DB))
			userAdmin.POST("", userControllers.CreateUser(d.DB))
			userAdmin.GET("/:id", userControllers.GetUserByID(d.DB))
			userAdmin.PUT("/:id", userControllers.UpdateUserByID(d.DB))
			userAdmin.PUT("/:id/status", userControllers.UpdateUserStatus(d.DB))
			userAdmin.DELETE("/:id", userControllers.DeleteUserByID(d.DB))
			userAdmin.GET("/:id/cart", cartControllers.GetAdminUserCart(d.Engine))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.DB))
			productAdmin.GET("", productcontroller.GetProducts(d.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.DB))
			productAdmin.GET("/:id", productcontroller.GetProductByID(d.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.DB))
		}

		// ─────────── Supplier Management ───────────
		supplierAdmin := adminGroup.Group("/suppliers")
		{
			supplierAdmin.POST("", productcontroller.CreateSupplier(d.DB))
			supplierAdmin.GET("", productcontroller.GetAllSuppliers(d.DB))
			supplierAdmin.GET("/:id", productcontroller.GetSupplierByID(d.DB))
			supplierAdmin.PUT("/:id", productcontroller.UpdateSupplier(d.DB))
			supplierAdmin.DELETE("/:id", productcontroller.DeleteSupplier(d.DB))
		}

		// ─────────── Purchases ───────────
		purchaseAdmin := adminGroup.Group("/purchases")
		{
			purchaseAdmin.GET("", purchaseControllers.GetAllPurchases(d.DB))
			purchaseAdmin.GET("/export-excel", purchaseControllers.ExportPurchasesToExcel(d.DB))
			purchaseAdmin.GET("/ws", d.Feed.Handler)
			purchaseAdmin.GET("/:id", purchaseControllers.GetPurchaseByID(d.DB))
			purchaseAdmin.DELETE("/:id", purchaseControllers.DeletePurchase(d.DB))
		}
		adminGroup.GET("/payouts", purchaseControllers.GetPendingPayouts(d.DB))
	}
}
