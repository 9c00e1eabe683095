package handler

import (
	"net/http"
	"strconv"

	"photo-share-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListImages 返回画廊视图：所有图片及上传者、点赞数和嵌套评论
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.service.ListGalleryImages()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择文件"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	record, url, err := h.service.ProcessImageUpload(file, uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "上传成功",
		"image": gin.H{
			"id":          record.ID,
			"filename":    record.Filename,
			"url":         url,
			"size":        record.Size,
			"uploaded_at": record.UploadedAt,
		},
	})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteOwnedImage(uid, uint(imageID)); err != nil {
		httpx.WriteServiceError(c, err, "删除失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ToggleImageLike 点赞/取消点赞图片，返回切换后的状态
func (h *Handler) ToggleImageLike(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	liked, count, err := h.service.ToggleImageLike(uid, uint(imageID))
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
