package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okanay/backend-blog-core/configs"
	cache "github.com/okanay/backend-blog-core/services/cache"
	"github.com/okanay/backend-blog-core/utils"
)

type loginWindow struct {
	Attempts int       `json:"attempts"`
	ResetAt  time.Time `json:"resetAt"`
}

type LoginRateLimitMiddleware struct {
	cache *cache.Cache
}

func NewLoginRateLimitMiddleware(c *cache.Cache) *LoginRateLimitMiddleware {
	return &LoginRateLimitMiddleware{cache: c}
}

// RateLimit caps login attempts per client IP. bcrypt verification is
// deliberately expensive, so unauthenticated callers don't get to spend it
// freely.
func (m *LoginRateLimitMiddleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := utils.GetTrueClientIP(c)
		cacheKey := fmt.Sprintf("login_rate_limit:%s", ip)

		now := time.Now()
		window := loginWindow{ResetAt: now.Add(configs.LOGIN_WINDOW)}
		if data, exists := m.cache.Get(cacheKey); exists {
			if err := json.Unmarshal(data, &window); err != nil || now.After(window.ResetAt) {
				window = loginWindow{ResetAt: now.Add(configs.LOGIN_WINDOW)}
			}
		}

		if window.Attempts >= configs.LOGIN_MAX_ATTEMPTS {
			retryAfter := max(int(time.Until(window.ResetAt).Seconds()), 0)
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "Too many login attempts. Please try again later.",
			})
			c.Abort()
			return
		}

		window.Attempts++
		if data, err := json.Marshal(window); err == nil {
			m.cache.Set(cacheKey, data)
		}

		c.Next()
	}
}
