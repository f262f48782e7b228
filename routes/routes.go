package routes

import (
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/commerce"
	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/events"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the shared services the handlers are built from.
type Dependencies struct {
	DB     *gorm.DB
	Engine *commerce.Engine
	Tokens auth.Tokens
	APIKey string
	Feed   *events.Feed
	Log    *zap.Logger
}

// SetupRoutes is the single entry point that wires up the Auth, Store, User
// and Admin route groups.
func SetupRoutes(r *gin.Engine, d Dependencies) {
	// 1️⃣ Public auth routes
	SetupAuthRoutes(r, d)

	// 2️⃣ Public catalog, personalised when a token is sent
	SetupStoreRoutes(r, d)

	// 3️⃣ User routes (JWT protected)
	SetupUserRoutes(r, d)

	// 4️⃣ Admin routes (API key protected)
	SetupAdminRoutes(r, d)
}
