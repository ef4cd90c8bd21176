package UserHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/configs"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (h *Handler) Login(c *gin.Context) {
	var request types.UserLoginRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	result, err := h.Session.Login(request.Username, request.Password)
	if err != nil {
		// One message for unknown username and wrong password alike.
		if errors.Is(err, types.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid_credentials",
				"message": "Invalid username or password.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the session.",
		})
		return
	}

	setRefreshCookie(
		c,
		configs.REFRESH_TOKEN_NAME,
		result.RefreshToken,
		int(configs.REFRESH_TOKEN_DURATION.Seconds()),
	)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Login successful.",
		"user":        result.User,
		"accessToken": result.AccessToken,
	})
}
