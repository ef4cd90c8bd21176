package StaffHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/services"
	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

type Handler struct {
	Staff *services.StaffLifecycle
	Cache *cache.Cache
}

func NewHandler(staff *services.StaffLifecycle, listCache *cache.Cache) *Handler {
	return &Handler{
		Staff: staff,
		Cache: listCache,
	}
}

// handleStaffError maps lifecycle errors onto the response contract shared
// by all staff endpoints.
func handleStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "forbidden",
			"message": err.Error(),
		})
	case errors.Is(err, types.ErrNotEmployee):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "not_employee",
			"message": "This account is not an employee.",
		})
	case errors.Is(err, types.ErrAlreadyEmployee):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   "already_employee",
			"message": "This account is already an employee.",
		})
	case errors.Is(err, types.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not_found",
			"message": "User not found.",
		})
	case errors.Is(err, types.ErrDeletionFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "deletion_failed",
			"message": "Employee removal failed; nothing was removed. Please try again.",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An unexpected error occurred.",
		})
	}
}
