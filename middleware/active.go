package middleware

import (
	"errors"
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActiveAccount runs after ValidateToken and refuses callers whose account
// was deactivated after their token was issued. Unknown users pass through
// so handlers can answer 404.
func ActiveAccount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.Select("id", "status").First(&user, "id = ?", c.GetString("user_id")).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.Next()
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			c.Abort()
		case user.Status == models.UserInactive:
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
			c.Abort()
		default:
			c.Next()
		}
	}
}
