package UserHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/configs"
	"github.com/okanay/backend-blog-core/types"
)

// Refresh exchanges the refresh cookie for a fresh access token. The
// refresh token itself is not rotated. Failure reasons stay machine
// distinguishable for the client's single retry.
func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(configs.REFRESH_TOKEN_NAME)

	result, err := h.Session.Refresh(refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrNoSession):
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "no_cookie",
				"message": "No session found.",
			})
		case errors.Is(err, types.ErrSessionRevoked):
			clearSessionCookie(c)
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "session_revoked",
				"message": "Session has been revoked.",
			})
		case errors.Is(err, types.ErrSessionExpired):
			clearSessionCookie(c)
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "session_expired",
				"message": "Session has expired.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "server_error",
				"message": "An error occurred while renewing the session.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}

func clearSessionCookie(c *gin.Context) {
	setRefreshCookie(c, configs.REFRESH_TOKEN_NAME, "", -1)
}
