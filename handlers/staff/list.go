package StaffHandler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/types"
)

// List returns the current employees, serving from the list cache when the
// entry is still fresh. Staff mutations invalidate the key.
func (h *Handler) List(c *gin.Context) {
	if data, exists := h.Cache.Get(cache.KeyEmployees); exists {
		var employees []types.UserProfileResponse
		if err := json.Unmarshal(data, &employees); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"employees": employees,
				"count":     len(employees),
			})
			return
		}
	}

	users, err := h.Staff.Employees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while loading employees.",
		})
		return
	}

	employees := make([]types.UserProfileResponse, 0, len(users))
	for i := range users {
		employees = append(employees, types.NewUserProfileResponse(&users[i]))
	}

	if data, err := json.Marshal(employees); err == nil {
		h.Cache.Set(cache.KeyEmployees, data)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"employees": employees,
		"count":     len(employees),
	})
}
