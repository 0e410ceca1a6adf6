package middleware

import (
	"net/http"
	"strings"

	"elysium/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin console endpoints with the signed
// session token issued at login.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		username, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminUser", username)
		c.Set("isAdmin", true)
		c.Next()
	}
}
