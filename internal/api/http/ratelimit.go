package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/portfolio-api/internal/config"
	apperrors "github.com/spec-kit/portfolio-api/pkg/util/errorutil"
)

// RateLimiter returns a fixed-window per-IP limiter backed by Redis, applied
// to public write endpoints. When Redis is down the request is let through;
// availability wins over throttling here.
func RateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	window := cfg.Window()
	maxRequests := cfg.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}

	return func(c *fiber.Ctx) error {
		if client == nil {
			return c.Next()
		}

		windowStart := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), windowStart)

		count, err := client.Incr(c.UserContext(), key).Result()
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			if err := client.Expire(c.UserContext(), key, window).Err(); err != nil {
				logger.Warn("rate limiter expire failed", zap.Error(err))
			}
		}
		if count > int64(maxRequests) {
			return apperrors.NewRateLimited("too many requests, please try again later")
		}
		return c.Next()
	}
}
