package BlogHandler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

func (h *Handler) SelectAllTags(c *gin.Context) {
	if data, exists := h.Cache.Get(cache.KeyTags); exists {
		var tags []types.TagView
		if err := json.Unmarshal(data, &tags); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"tags":    tags,
			})
			return
		}
	}

	tags, err := h.BlogRepository.SelectAllTags()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while loading tags.",
		})
		return
	}

	if data, err := json.Marshal(tags); err == nil {
		h.Cache.Set(cache.KeyTags, data)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tags":    tags,
	})
}
