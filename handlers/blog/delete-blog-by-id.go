package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/services"
	"github.com/okanay/backend-blog-core/types"
)

// DeleteBlogByID removes a single post. The author or an admin may delete.
func (h *Handler) DeleteBlogByID(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_id",
			"message": "Invalid blog ID format.",
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

	if !services.CanDeletePost(userID, role, blog) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "forbidden",
			"message": "Only the author or an admin may delete a post.",
		})
		return
	}

	if err := h.BlogRepository.HardDeleteBlogByID(blogID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while deleting the blog post.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog post deleted.",
	})
}
