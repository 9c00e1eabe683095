package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/model"
	"strings"

	"gorm.io/gorm"
)

// CreateComment 在指定图片下创建评论并返回评论视图。
func (s *AppService) CreateComment(uid uint, imageID uint, text string) (*GalleryComment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.NewValidationError("评论内容不能为空")
	}

	if _, err := s.repos.Image.FindByID(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("图片不存在")
		}
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	author, err := s.repos.User.FindByID(uid)
	if err != nil {
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	comment := model.Comment{
		UserID:  uid,
		ImageID: imageID,
		Text:    text,
	}
	if err := s.repos.Comment.Create(&comment); err != nil {
		return nil, common.NewInternalError("评论失败，请稍后重试")
	}

	return &GalleryComment{
		ID:         comment.ID,
		UserID:     comment.UserID,
		Username:   author.Username,
		Text:       comment.Text,
		CreatedAt:  comment.CreatedAt,
		LikesCount: 0,
	}, nil
}

// ToggleCommentLike 切换评论点赞状态，语义与图片点赞一致，
// 作用于独立的 comment_likes 表，返回切换后的状态与最新点赞数。
func (s *AppService) ToggleCommentLike(uid uint, commentID uint) (bool, int64, error) {
	if _, err := s.repos.Comment.FindByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, common.NewNotFoundError("评论不存在")
		}
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}

	liked := false
	deleted, err := s.repos.CommentLike.Delete(uid, commentID)
	if err != nil {
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}
	if !deleted {
		if err := s.repos.CommentLike.Create(uid, commentID); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return false, 0, common.NewInternalError("操作失败，请稍后重试")
			}
		}
		liked = true
	}

	count, err := s.repos.CommentLike.CountByComment(commentID)
	if err != nil {
		return false, 0, common.NewInternalError("操作失败，请稍后重试")
	}
	return liked, count, nil
}
