package router

import (
	"net/http"
	"time"

	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：进程内令牌桶，Redis 可用时叠加共享固定窗口
	authLimiter := middleware.AuthRateLimitMiddleware()
	redisAuthLimiter := middleware.RedisAuthRateLimitMiddleware(60, time.Minute)

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	api.GET("/stats", rt.handler.GetStats)

	registerAuthRoutes(api, authLimiter, redisAuthLimiter, rt.handler)
	registerImageRoutes(api, rt.handler)
	registerCommentRoutes(api, rt.handler)
}
