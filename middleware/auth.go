package middleware

import (
	"net/http"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/auth"
	"github.com/gin-gonic/gin"
)

// ValidateToken rejects requests without a valid session token and puts the
// caller's user_id and role on the context.
func ValidateToken(tokens auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalToken identifies the caller when a valid token is present and
// lets anonymous requests through.
func OptionalToken(tokens auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := c.GetHeader("Authorization"); tokenString != "" {
			if claims, err := tokens.Parse(tokenString); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}
