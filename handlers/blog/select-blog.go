package BlogHandler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) SelectBlogByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blog":    blog,
	})
}

func (h *Handler) SelectBlogCards(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	cards, err := h.BlogRepository.SelectBlogCards(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while loading blog posts.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"blogs":   cards,
		"count":   len(cards),
	})
}
