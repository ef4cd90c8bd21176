package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/services"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateBlogStatus changes only the publication status. This is the one
// override admins hold over posts they do not own.
func (h *Handler) UpdateBlogStatus(c *gin.Context) {
	var request types.BlogUpdateStatusInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	blogID, err := uuid.Parse(request.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Invalid blog ID format.",
		})
		return
	}

	if !request.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_status",
			"message": "Unknown blog status.",
		})
		return
	}

	blog, err := h.BlogRepository.SelectBlogByID(blogID)
	if err != nil {
		handleBlogNotFound(c, err)
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	role := c.MustGet("role").(types.Role)

	if !services.CanChangePostStatus(userID, role, blog) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "forbidden",
			"message": "Only the author or an admin may change a post's status.",
		})
		return
	}

	if err := h.BlogRepository.UpdateBlogStatus(blogID, request.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while updating the blog status.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog status updated successfully.",
	})
}
