package StaffHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Remove retires an employee: the account and all of its posts are deleted
// in one unit. Admins cannot remove themselves.
func (h *Handler) Remove(c *gin.Context) {
	actorID := c.MustGet("user_id").(uuid.UUID)

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Invalid user ID format.",
		})
		return
	}

	postsDeleted, err := h.Staff.Remove(c.Request.Context(), actorID, targetID)
	if err != nil {
		handleStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Employee removed.",
		"postsDeleted": postsDeleted,
	})
}
