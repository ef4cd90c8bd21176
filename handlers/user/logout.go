package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/configs"
)

// Logout is idempotent: no cookie, an unknown token or a double logout all
// succeed. The stored refresh-token slot is cleared when a matching account
// exists, which is the actual revocation.
func (h *Handler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(configs.REFRESH_TOKEN_NAME)
	if err != nil || refreshToken == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.Session.Logout(refreshToken); err != nil {
		// Revocation failed server-side; still drop the cookie so the
		// client is logged out locally, but report the error.
		clearSessionCookie(c)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while closing the session.",
		})
		return
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful.",
	})
}
