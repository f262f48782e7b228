package routes

import (
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, d Dependencies) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(d.DB, d.Tokens))
		authGroup.POST("/login", auth.Login(d.DB, d.Tokens))
	}
}
