package StaffHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateRole changes an employee's role. The target's session is revoked
// together with the role change, so they sign in again under the new role.
func (h *Handler) UpdateRole(c *gin.Context) {
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

	var request types.StaffRoleUpdateRequest
	err = utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	user, err := h.Staff.UpdateRole(actorID, targetID, request.Role)
	if err != nil {
		handleStaffError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Role updated successfully.",
		"user":    types.NewUserProfileResponse(&user),
	})
}
