package service

import (
	"testing"

	"photo-share-server/internal/common"
	"photo-share-server/internal/model"
)

// 测试内容：验证评论创建成功并带上作者用户名。
func TestCreateComment_Success(t *testing.T) {
	svc, gdb := setupTestService(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	bob := createTestUser(t, gdb, "bob", "abc12345")
	img := createTestImage(t, gdb, alice.ID, "a.png", 100)

	view, err := svc.CreateComment(bob.ID, img.ID, "nice!")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if view.Username != "bob" || view.Text != "nice!" || view.LikesCount != 0 {
		t.Fatalf("非预期的评论视图: %+v", view)
	}

	var count int64
	_ = gdb.Model(&model.Comment{}).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望 1 条评论，实际 %d", count)
	}
}

// 测试内容：验证空白评论与不存在的图片被拒绝。
func TestCreateComment_Rejected(t *testing.T) {
	svc, gdb := setupTestService(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	img := createTestImage(t, gdb, alice.ID, "a.png", 100)

	_, err := svc.CreateComment(alice.ID, img.ID, "   ")
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeValidation {
		t.Fatalf("期望空白评论返回 Validation，实际 %v", err)
	}

	_, err = svc.CreateComment(alice.ID, 9999, "hello")
	serviceErr, ok = common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望图片不存在返回 NotFound，实际 %v", err)
	}
}

// 测试内容：验证评论点赞切换语义与图片点赞一致且互不影响。
func TestToggleCommentLike(t *testing.T) {
	svc, gdb := setupTestService(t)
	alice := createTestUser(t, gdb, "alice", "abc12345")
	img := createTestImage(t, gdb, alice.ID, "a.png", 100)

	view, err := svc.CreateComment(alice.ID, img.ID, "first!")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	liked, likes, err := svc.ToggleCommentLike(alice.ID, view.ID)
	if err != nil || !liked || likes != 1 {
		t.Fatalf("首次切换期望 added 且点赞数 1: liked=%v likes=%d err=%v", liked, likes, err)
	}

	// 评论点赞不应影响图片点赞表
	var imageLikes int64
	_ = gdb.Model(&model.Like{}).Count(&imageLikes).Error
	if imageLikes != 0 {
		t.Fatalf("评论点赞不应写入图片点赞表")
	}

	liked, likes, err = svc.ToggleCommentLike(alice.ID, view.ID)
	if err != nil || liked || likes != 0 {
		t.Fatalf("二次切换期望 removed 且点赞数 0: liked=%v likes=%d err=%v", liked, likes, err)
	}

	_, _, err = svc.ToggleCommentLike(alice.ID, 9999)
	serviceErr, ok := common.AsServiceError(err)
	if !ok || serviceErr.Code != common.ErrorCodeNotFound {
		t.Fatalf("期望评论不存在返回 NotFound，实际 %v", err)
	}
}
