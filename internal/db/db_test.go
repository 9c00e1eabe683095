package db_test

import (
	"testing"

	"photo-share-server/internal/db"
	"photo-share-server/internal/model"
	"photo-share-server/internal/testutils"

	"gorm.io/gorm"
)

// 测试内容：验证迁移后五张表均可写入，且点赞表唯一键生效。
func TestMigration_TablesAndUniqueLike(t *testing.T) {
	testutils.SetupDB(t)

	u := model.User{Username: "alice", Password: "x"}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	img := model.Image{Filename: "a.jpg", Path: "2026/01/01/a.jpg", Size: 1, MimeType: ".jpg", UploadedAt: 1, UserID: u.ID}
	if err := db.DB.Create(&img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	cm := model.Comment{UserID: u.ID, ImageID: img.ID, Text: "nice"}
	if err := db.DB.Create(&cm).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	if err := db.DB.Create(&model.Like{ImageID: img.ID, UserID: u.ID}).Error; err != nil {
		t.Fatalf("创建点赞失败: %v", err)
	}
	err := db.DB.Create(&model.Like{ImageID: img.ID, UserID: u.ID}).Error
	if err == nil {
		t.Fatalf("期望重复点赞触发唯一键冲突")
	}
	if err != gorm.ErrDuplicatedKey {
		t.Logf("冲突错误类型: %v", err)
	}

	if err := db.DB.Create(&model.CommentLike{CommentID: cm.ID, UserID: u.ID}).Error; err != nil {
		t.Fatalf("创建评论点赞失败: %v", err)
	}
	if err := db.DB.Create(&model.CommentLike{CommentID: cm.ID, UserID: u.ID}).Error; err == nil {
		t.Fatalf("期望重复评论点赞触发唯一键冲突")
	}
}
