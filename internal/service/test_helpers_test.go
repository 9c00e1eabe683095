package service

import (
	"testing"

	"photo-share-server/internal/model"
	"photo-share-server/internal/repository"
	"photo-share-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*AppService, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	svc := NewAppService(repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewImageRepository(gdb),
		repository.NewCommentRepository(gdb),
		repository.NewLikeRepository(gdb),
		repository.NewCommentLikeRepository(gdb),
	))
	return svc, gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, username, password string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := model.User{Username: username, Password: string(hashed)}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return &u
}

func createTestImage(t *testing.T, gdb *gorm.DB, userID uint, filename string, uploadedAt int64) *model.Image {
	t.Helper()
	img := model.Image{
		Filename:   filename,
		Path:       "2026/01/01/" + filename,
		Size:       128,
		MimeType:   ".png",
		UploadedAt: uploadedAt,
		UserID:     userID,
	}
	if err := gdb.Create(&img).Error; err != nil {
		t.Fatalf("创建测试图片失败: %v", err)
	}
	return &img
}
