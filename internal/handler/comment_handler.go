package handler

import (
	"net/http"
	"strconv"

	"photo-share-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateComment(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	comment, err := h.service.CreateComment(uid, uint(imageID), req.Text)
	if err != nil {
		httpx.WriteServiceError(c, err, "评论失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "评论成功",
		"comment": comment,
	})
}

// ToggleCommentLike 点赞/取消点赞评论，与图片点赞互不影响
func (h *Handler) ToggleCommentLike(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的评论ID"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	liked, count, err := h.service.ToggleCommentLike(uid, uint(commentID))
	if err != nil {
		httpx.WriteServiceError(c, err, "操作失败，请稍后重试")
		return
	}

	message := "已取消点赞"
	if liked {
		message = "点赞成功"
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes_count": count, "message": message})
}
