package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateRequest binds the JSON body into request and writes the 400
// response itself when the body fails binding-tag validation. Handlers only
// re-check business rules after this.
func ValidateRequest(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_request",
			"message": err.Error(),
		})
		return err
	}

	return nil
}
