package handler

import (
	"net/http"

	"photo-share-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetStats 返回站点概况（用户数、图片数）
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetSystemStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取站点统计失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}
