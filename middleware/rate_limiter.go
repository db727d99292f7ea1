// middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/openmusic-api/openmusic/db"
	logger "github.com/openmusic-api/openmusic/logging"
)

// RateLimiter applies a per-IP sliding window over Redis. The window errs
// open so a broken Redis never takes requests down with it.
func RateLimiter(client *redis.Client, limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed, err := db.RateLimit(c, client, key, limit, per)
		if err != nil {
			logger.Warn("Rate limiting unavailable", zap.Error(err), zap.String("ip", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"status":  "fail",
				"message": "too many requests",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
