package router

import (
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, h *handler.Handler) {
	commentGroup := api.Group("/comments")
	commentGroup.Use(middleware.JWTAuth())

	// :id 在创建接口里是图片 ID，在点赞接口里是评论 ID
	commentGroup.POST("/:id", h.CreateComment)
	commentGroup.POST("/:id/like", h.ToggleCommentLike)
}
