package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-share-server/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证评论创建接口返回 201 与作者信息。
func TestCreateCommentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, gdb := setupTestHandler(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	bob := createTestUser(t, gdb, "bob", "abc12345")
	img := createTestImage(t, gdb, alice.ID, "a.png", 100)

	r := gin.New()
	r.POST("/api/comments/:id", asUser(bob.ID), h.CreateComment)

	target := fmt.Sprintf("/api/comments/%d", img.ID)

	w := postJSON(t, r, target, gin.H{"text": "nice!"})
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Comment struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
			Text     string `json:"text"`
		} `json:"comment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Comment.ID == 0 || resp.Comment.Username != "bob" || resp.Comment.Text != "nice!" {
		t.Fatalf("非预期的评论响应: %s", w.Body.String())
	}

	// 空文本与缺失图片
	if w := postJSON(t, r, target, gin.H{"text": ""}); w.Code != http.StatusBadRequest {
		t.Fatalf("空评论期望 400，实际为 %d", w.Code)
	}
	if w := postJSON(t, r, "/api/comments/9999", gin.H{"text": "hello"}); w.Code != http.StatusNotFound {
		t.Fatalf("图片不存在期望 404，实际为 %d", w.Code)
	}
}

// 测试内容：验证评论点赞切换接口及其与图片点赞的隔离。
func TestToggleCommentLikeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, gdb := setupTestHandler(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	img := createTestImage(t, gdb, alice.ID, "a.png", 100)
	cm := model.Comment{UserID: alice.ID, ImageID: img.ID, Text: "first!"}
	if err := gdb.Create(&cm).Error; err != nil {
		t.Fatalf("创建测试评论失败: %v", err)
	}

	r := gin.New()
	r.POST("/api/comments/:id/like", asUser(alice.ID), h.ToggleCommentLike)

	target := fmt.Sprintf("/api/comments/%d/like", cm.ID)

	var resp struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || !resp.Liked || resp.LikesCount != 1 {
		t.Fatalf("首次切换期望 liked=true 且 likes_count=1: %s", w.Body.String())
	}

	var imageLikes int64
	_ = gdb.Model(&model.Like{}).Count(&imageLikes).Error
	if imageLikes != 0 {
		t.Fatalf("评论点赞不应写入图片点赞表")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Liked || resp.LikesCount != 0 {
		t.Fatalf("二次切换期望 liked=false 且 likes_count=0: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/comments/9999/like", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}
