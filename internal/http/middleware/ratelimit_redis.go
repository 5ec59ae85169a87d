package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"

	"rps_arena/internal/logger"
)

var redisClient *redis.Client

// InitRedisRateLimiter sets up the shared Redis client backing the rate
// limiter. An empty addr, or a failed ping, leaves the limiter fail-open
// so the server keeps serving without Redis.
func InitRedisRateLimiter(addr, password string, db int) {
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, rate limiting disabled", "addr", addr, "error", err)
		return
	}

	redisClient = client
	logger.Info("redis rate limiter enabled", "addr", addr)
}

// RateLimit is a fixed-window limiter keyed by client IP, implemented with
// Redis INCR/EXPIRE.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := "rl:" + strconv.Itoa(int(window.Seconds())) + ":" + c.ClientIP()
		ctx := c.Request.Context()

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// fail open on Redis trouble
			c.Next()
			return
		}
		if count == 1 {
			redisClient.Expire(ctx, key, window)
		}

		if count > int64(maxRequests) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
