package router

import (
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(api *gin.RouterGroup, h *handler.Handler) {
	imageGroup := api.Group("/images")
	imageGroup.Use(middleware.JWTAuth())

	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	imageGroup.GET("", h.ListImages)
	imageGroup.POST("", uploadBodyLimit, h.UploadImage)
	imageGroup.DELETE("/:id", h.DeleteImage)
	imageGroup.POST("/:id/like", h.ToggleImageLike)
}
