package middleware

import (
	"context"
	"net/http"
	"time"

	"photo-share-server/internal/service"

	"github.com/gin-gonic/gin"
)

// redisFixedWindowAllow 基于 Redis INCR + EXPIRE 的固定窗口计数
// 返回 false 表示该 IP 在当前窗口内的请求数已超限
func redisFixedWindowAllow(ctx context.Context, ip string, limit int, window time.Duration) (bool, error) {
	redisClient := service.GetRedisClient()
	if redisClient == nil {
		return true, nil
	}

	key := service.RedisKey("ratelimit", "auth", ip)
	count, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		return true, err
	}
	if count == 1 {
		// 第一个请求建立窗口
		_ = redisClient.Expire(ctx, key, window).Err()
	}
	return count <= int64(limit), nil
}

// RedisAuthRateLimitMiddleware 基于 Redis 的认证接口限流
// 多实例部署时共享计数；Redis 不可用时放行，由进程内限流兜底
func RedisAuthRateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if service.GetRedisClient() == nil {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		allowed, err := redisFixedWindowAllow(ctx, c.ClientIP(), limit, window)
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
