package StaffHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// Promote lifts a regular user into the staff pool as Editor or Admin.
func (h *Handler) Promote(c *gin.Context) {
	var request types.StaffPromoteRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	targetID, err := uuid.Parse(request.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Invalid user ID format.",
		})
		return
	}

	user, err := h.Staff.Promote(targetID, request.Role)
	if err != nil {
		handleStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User promoted successfully.",
		"user":    types.NewUserProfileResponse(&user),
	})
}
