package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证站点统计接口返回用户数与图片数。
func TestGetStatsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, gdb := setupTestHandler(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	createTestImage(t, gdb, alice.ID, "a.png", 100)

	r := gin.New()
	r.GET("/api/stats", h.GetStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Users  int64 `json:"users"`
		Images int64 `json:"images"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Users != 1 || resp.Images != 1 {
		t.Fatalf("非预期的统计结果: %s", w.Body.String())
	}
}
