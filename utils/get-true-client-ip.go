package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTrueClientIP prefers the reverse-proxy headers over the socket peer.
func GetTrueClientIP(c *gin.Context) string {
	ip := c.Request.Header.Get("X-Real-IP")
	if ip != "" {
		return ip
	}

	// Last entry in the chain is the closest client.
	forwardedFor := c.Request.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		lastIP := strings.TrimSpace(ips[len(ips)-1])
		if lastIP != "" {
			return lastIP
		}
	}

	return c.ClientIP()
}
