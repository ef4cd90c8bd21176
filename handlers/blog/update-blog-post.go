package BlogHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/services"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

// UpdateBlogPost edits content fields. Content edits are author-only; an
// admin who wants to intervene on someone else's post is limited to the
// status endpoint.
func (h *Handler) UpdateBlogPost(c *gin.Context) {
	var request types.BlogUpdateInput

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

	blog, err := h.BlogRepository.SelectBlogByID(blogID)
	if err != nil {
		handleBlogNotFound(c, err)
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)
	role := c.MustGet("role").(types.Role)

	if !services.CanEditPostContent(userID, role, blog) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "forbidden",
			"message": "Only the author may edit a post's content.",
		})
		return
	}

	updated, err := h.BlogRepository.UpdateBlogPost(blogID, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while updating the blog post.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog post updated successfully.",
		"blog":    updated,
	})
}

func handleBlogNotFound(c *gin.Context, err error) {
	if errors.Is(err, types.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not_found",
			"message": "Blog post not found.",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "server_error",
		"message": "An error occurred while loading the blog post.",
	})
}
