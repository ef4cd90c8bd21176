package BlogHandler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/configs"
	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

func (h *Handler) DeleteTag(c *gin.Context) {
	value := c.Param("value")
	if value == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_tag",
			"message": "Tag value is required.",
		})
		return
	}

	err := h.BlogRepository.DeleteTagByValue(value)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "not_found",
				"message": "Tag not found.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while deleting the tag.",
		})
		return
	}

	h.Cache.Delete(cache.KeyTags)

	// Stale references on posts are cleaned up in the background. Until
	// the purge lands, posts may still report the deleted tag.
	go h.purgeTagReferences(value)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tag deleted successfully.",
	})
}

func (h *Handler) purgeTagReferences(value string) {
	purged, err := h.BlogRepository.PurgeTagReferences(value)
	if err != nil {
		h.Logger.Error("tag reference purge failed", "tag", value, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), configs.EVENT_PUBLISH_TIMEOUT)
	defer cancel()

	err = h.Producer.PublishEvent(ctx, "tag_deleted", map[string]any{
		"tag":    value,
		"purged": purged,
	})
	if err != nil {
		h.Logger.Warn("tag_deleted event publish failed", "tag", value, "error", err)
	}
}
