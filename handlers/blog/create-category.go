package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var request types.CategoryInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	category, err := h.BlogRepository.CreateCategory(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the category.",
		})
		return
	}

	h.Cache.Delete(cache.KeyCategories)

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Category created successfully.",
		"category": category,
	})
}
