package BlogHandler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

func (h *Handler) SelectAllCategories(c *gin.Context) {
	if data, exists := h.Cache.Get(cache.KeyCategories); exists {
		var categories []types.CategoryView
		if err := json.Unmarshal(data, &categories); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"categories": categories,
			})
			return
		}
	}

	categories, err := h.BlogRepository.SelectAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while loading categories.",
		})
		return
	}

	if data, err := json.Marshal(categories); err == nil {
		h.Cache.Set(cache.KeyCategories, data)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}
