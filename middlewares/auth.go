package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/utils"
)

// AuthMiddleware is the request gate: it verifies the bearer access token
// and populates the authenticated identity before any handler runs. Expired
// tokens are not renewed here; the client goes through /auth/refresh and
// retries once.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract the bearer token
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			handleUnauthorized(c, "You must be logged in to access this resource.")
			return
		}
		accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		// 2. Validate the access token
		claims, err := utils.ValidateAccessToken(accessToken)
		if err != nil {
			handleUnauthorized(c, "Invalid or expired session.")
			return
		}

		// 3. Token is valid, add user information to the context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		// 4. Continue processing
		c.Next()
	}
}

func handleUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": message,
	})
	c.Abort()
}
