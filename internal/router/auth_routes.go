package router

import (
	"photo-share-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter, redisAuthLimiter gin.HandlerFunc, h *handler.Handler) {
	api.POST("/auth/register", authLimiter, redisAuthLimiter, h.Register)
	api.POST("/auth/login", authLimiter, redisAuthLimiter, h.Login)
}
