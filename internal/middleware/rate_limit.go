package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/utils"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

const (
	rateLimitWindow         = time.Minute
	fallbackUserRateLimit   = 600
	fallbackGlobalRateLimit = 6000
)

type RateLimitMiddleware struct {
	redis  redis.Cmdable
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis redis.Cmdable, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// UserRateLimit counts requests per authenticated user. It must run after JWTAuth.
func (m *RateLimitMiddleware) UserRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(utils.UserIDKey))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User ID required for rate limiting"})
			return
		}

		limit := m.config.DefaultRateLimit
		if limit <= 0 {
			limit = fallbackUserRateLimit
		}

		m.limit(c, fmt.Sprintf("rate_limit:user:%s", userID), limit, "Rate limit exceeded")
	}
}

// GlobalRateLimit counts requests per client IP
func (m *RateLimitMiddleware) GlobalRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := m.config.GlobalRateLimit
		if limit <= 0 {
			limit = fallbackGlobalRateLimit
		}

		m.limit(c, fmt.Sprintf("rate_limit:global:%s", c.ClientIP()), limit, "Global rate limit exceeded")
	}
}

// limit applies a fixed one-minute window stored under key. Redis errors fail open.
func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, message string) {
	ctx := c.Request.Context()
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Reset", reset)

	if current >= limit {
		c.Header("X-RateLimit-Remaining", "0")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": reset,
		})
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	c.Header("X-RateLimit-Remaining", strconv.Itoa(max(limit-(current+1), 0)))
	c.Next()
}
