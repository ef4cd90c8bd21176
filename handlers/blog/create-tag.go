package BlogHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
	"github.com/okanay/backend-blog-core/utils"
)

func (h *Handler) CreateTag(c *gin.Context) {
	var request types.TagInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	tag, err := h.BlogRepository.CreateTag(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the tag.",
		})
		return
	}

	h.Cache.Delete(cache.KeyTags)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Tag created successfully.",
		"tag":     tag,
	})
}
