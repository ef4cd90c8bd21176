package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdatePassword changes the password of the authenticated account.
// Unverified accounts may not change their password.
func (h *Handler) UpdatePassword(c *gin.Context) {
	var request types.PasswordUpdateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	user, err := h.UserRepository.SelectByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found.",
		})
		return
	}

	if !user.EmailVerified {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "not_verified",
			"message": "Verify your e-mail address before changing your password.",
		})
		return
	}

	if !utils.CheckPassword(request.CurrentPassword, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_credentials",
			"message": "Invalid username or password.",
		})
		return
	}

	hashedPassword, err := utils.EncryptPassword(request.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while updating the password.",
		})
		return
	}

	if err := h.UserRepository.UpdatePassword(userID, hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while updating the password.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated successfully.",
	})
}
