package routes

import (
	productcontroller "github.com/Mulato-Aaron/Proyecto-5I-GameVerse/controllers/product"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStoreRoutes registers all “/store/*” endpoints.
func SetupStoreRoutes(r *gin.Engine, d Dependencies) {
	storeGroup := r.Group("/store")
	storeGroup.Use(middleware.OptionalToken(d.Tokens))
	{
		storeGroup.GET("/products", productcontroller.GetStoreProducts(d.DB))
		storeGroup.GET("/products/:id", productcontroller.GetStoreProduct(d.DB))
		storeGroup.GET("/suppliers/:id", productcontroller.GetStoreSupplier(d.DB))
	}
}
