package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/model"
	"photo-share-server/internal/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidateImageFile 验证上传的图片文件（大小、后缀、内容）
// 返回:
//   - bool: 是否合法
//   - string: 文件扩展名 (小写, 如 .jpg)
//   - error: 错误信息或原因
func (s *AppService) ValidateImageFile(file *multipart.FileHeader) (bool, string, error) {
	cfg := config.Get()

	maxSizeMB := cfg.Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return false, "", common.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return false, "", common.NewValidationError("无法识别文件类型")
	}

	allowed := false
	for _, allowExt := range strings.Split(cfg.Upload.AllowExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, ext, common.NewValidationError("不支持的文件类型: " + ext)
	}

	// 检查文件内容 (Magic Bytes)
	src, err := file.Open()
	if err != nil {
		return false, ext, common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return false, ext, common.NewValidationError(msg)
	}

	return true, ext, nil
}

// ProcessImageUpload 处理图片上传核心业务
// 包括：文件验证、安全落盘、数据库记录
func (s *AppService) ProcessImageUpload(file *multipart.FileHeader, uid uint) (*model.Image, string, error) {
	valid, ext, err := s.ValidateImageFile(file)
	if !valid {
		return nil, "", err
	}

	now := time.Now()
	datePath := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))

	cfg := config.Get()
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}
	uploadRootAbs, err := filepath.Abs(uploadRoot)
	if err != nil {
		return nil, "", common.NewInternalError("系统错误: 上传目录解析失败")
	}
	// 上传根目录节点本身不能是符号链接，防止根目录指向外部路径
	if err := utils.EnsurePathNotSymlink(uploadRootAbs); err != nil {
		log.Printf("Upload root security check failed: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 上传目录存在符号链接风险")
	}
	fullDir, err := utils.SecureJoin(uploadRootAbs, datePath)
	if err != nil {
		log.Printf("SecureJoin dir error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 非法存储目录")
	}

	if err := os.MkdirAll(fullDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 无法创建存储目录")
	}
	// 目录创建后再次检查链路，降低 TOCTOU 风险
	if err := utils.EnsureNoSymlinkBetween(uploadRootAbs, fullDir); err != nil {
		log.Printf("Upload dir security check failed: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 存储目录存在符号链接风险")
	}

	newFilename := uuid.New().String() + ext
	dst, err := utils.SecureJoin(fullDir, newFilename)
	if err != nil {
		log.Printf("SecureJoin dst error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 非法文件路径")
	}

	// 保存文件 (IO 操作放在数据库写入前，DB 失败则删除文件)
	src, err := file.Open()
	if err != nil {
		return nil, "", common.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return nil, "", common.NewInternalError("系统错误: 无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		return nil, "", common.NewInternalError("文件保存失败")
	}

	relativePath := filepath.ToSlash(filepath.Join(datePath, newFilename))

	imageRecord := model.Image{
		Filename:   newFilename,
		Path:       relativePath,
		Size:       file.Size,
		MimeType:   ext,
		UploadedAt: now.Unix(),
		UserID:     uid,
	}

	if err := s.repos.Image.Create(&imageRecord); err != nil {
		_ = os.Remove(dst) // 回滚文件
		log.Printf("Process upload DB error: %v\n", err)
		return nil, "", common.NewInternalError("系统错误: 数据库记录失败")
	}

	return &imageRecord, cfg.Upload.URLPrefix + relativePath, nil
}

// DeleteOwnedImage 删除用户自己的图片及其落盘文件。
// 图片不存在或不属于该用户时返回 Forbidden，不产生任何写入。
func (s *AppService) DeleteOwnedImage(uid uint, imageID uint) error {
	image, err := s.repos.Image.FindOwnedByID(imageID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewForbiddenError("无权删除该图片")
		}
		return common.NewInternalError("删除失败，请稍后重试")
	}

	if err := s.repos.Image.Delete(image); err != nil {
		log.Printf("Delete image DB error: %v\n", err)
		return common.NewInternalError("删除失败，请稍后重试")
	}

	// 文件删除为尽力而为：失败仅记录日志，不影响结果
	s.removeImageFile(image)

	return nil
}

func (s *AppService) removeImageFile(image *model.Image) {
	cfg := config.Get()
	uploadRoot := cfg.Upload.Path
	if uploadRoot == "" {
		uploadRoot = "uploads/imgs"
	}
	uploadRootAbs, err := filepath.Abs(uploadRoot)
	if err != nil {
		log.Printf("Remove image file: resolve upload root error: %v\n", err)
		return
	}
	fullPath, err := utils.SecureJoin(uploadRootAbs, filepath.FromSlash(image.Path))
	if err != nil {
		log.Printf("Remove image file: secure join error: %v\n", err)
		return
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Remove image file error: %v\n", err)
	}
}

// ToggleImageLike 切换图片点赞状态，返回切换后的状态与最新点赞数。
// 已点赞则取消并返回 false；未点赞则新增并返回 true。
// 并发下的重复插入由 (image_id, user_id) 唯一索引兜底。
func (s *AppService) ToggleImageLike(uid uint, imageID uint) (bool, int64, error) {
	if _, err := s.repos.Image.FindByID(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, common.NewNotFoundError("图片不存在")
		}
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}

	liked := false
	deleted, err := s.repos.Like.Delete(uid, imageID)
	if err != nil {
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}
	if !deleted {
		if err := s.repos.Like.Create(uid, imageID); err != nil {
			// 与并发请求竞争插入失败：点赞已存在，状态即为已点赞
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return false, 0, common.NewInternalError("操作失败，请稍后重试")
			}
		}
		liked = true
	}

	count, err := s.repos.Like.CountByImage(imageID)
	if err != nil {
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}
	return liked, count, nil
}
