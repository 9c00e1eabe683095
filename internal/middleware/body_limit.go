package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"photo-share-server/internal/config"

	"github.com/gin-gonic/gin"
)

// 非上传接口的请求体上限 (MB)，JSON 接口用不到更大的空间
const defaultBodyLimitMB = 2

// BodyLimitMiddleware 限制请求体大小
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 跳过图片上传路由，上限由 UploadBodyLimitMiddleware 单独控制
		// 这里简单通过方法和路径判断
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodPost && strings.HasSuffix(path, "/images") {
			c.Next()
			return
		}

		// 限制大小 (MB -> Bytes)
		maxBytes := int64(defaultBodyLimitMB) * 1024 * 1024

		// 使用 MaxBytesReader 限制读取的字节数
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxRequestBodyMB
		if maxSizeMB <= 0 {
			maxSizeMB = 12
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("请求体不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
