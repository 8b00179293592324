package middleware

import (
	"net/http"
	"strings"

	"maidly/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the back-office behind the static admin token
// from configuration. An empty configured token disables admin access.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminToken := config.AppConfig.AdminToken
		if adminToken == "" || tokenString != adminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
