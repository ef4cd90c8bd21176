package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
)

// DeleteAccount removes the authenticated account and everything it
// authored in one atomic unit. Admins cannot self-delete; another admin
// retires them through the staff endpoints.
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	user, err := h.UserRepository.SelectByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found.",
		})
		return
	}

	if user.Membership == types.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "forbidden",
			"message": "Admins cannot delete their own account; another admin must remove them.",
		})
		return
	}

	postsDeleted, err := h.Deleter.Delete(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "deletion_failed",
			"message": "Account deletion failed; nothing was removed. Please try again.",
		})
		return
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Account deleted.",
		"postsDeleted": postsDeleted,
	})
}
