package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (h *Handler) CreateBlogPost(c *gin.Context) {
	var request types.BlogPostCreateInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	userID := c.MustGet("user_id").(uuid.UUID)

	blog, err := h.BlogRepository.CreateBlogPost(request, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the blog post.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Blog post created successfully.",
		"blog":    blog,
	})
}
