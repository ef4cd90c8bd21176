package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// RequestAvatarUpload hands out a presigned upload URL. The account record
// is untouched until the client confirms the upload.
func (h *Handler) RequestAvatarUpload(c *gin.Context) {
	var request types.PresignURLInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	output, err := h.Storage.GenerateAvatarUploadURL(c.Request.Context(), userID, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "storage_error",
			"message": "Could not create an upload URL.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"upload":  output,
	})
}

// ConfirmAvatarUpload persists the uploaded object URL on the account.
func (h *Handler) ConfirmAvatarUpload(c *gin.Context) {
	var request types.AvatarConfirmInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	if err := h.UserRepository.UpdateAvatarURL(userID, request.URL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "Could not save the avatar.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Avatar updated.",
	})
}
