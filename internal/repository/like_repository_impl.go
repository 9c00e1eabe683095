package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func (r *LikeRepository) Create(userID, imageID uint) error {
	return r.db.Create(&model.Like{UserID: userID, ImageID: imageID}).Error
}

func (r *LikeRepository) Delete(userID, imageID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND image_id = ?", userID, imageID).Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepository) CountByImage(imageID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Like{}).Where("image_id = ?", imageID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) CountsByImageIDs(imageIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(imageIDs))
	if len(imageIDs) == 0 {
		return counts, nil
	}

	type row struct {
		ImageID uint
		Total   int64
	}
	var rows []row
	if err := r.db.Model(&model.Like{}).
		Select("image_id, COUNT(*) AS total").
		Where("image_id IN ?", imageIDs).
		Group("image_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rr := range rows {
		counts[rr.ImageID] = rr.Total
	}
	return counts, nil
}

type CommentLikeRepository struct {
	db *gorm.DB
}

func (r *CommentLikeRepository) Create(userID, commentID uint) error {
	return r.db.Create(&model.CommentLike{UserID: userID, CommentID: commentID}).Error
}

func (r *CommentLikeRepository) Delete(userID, commentID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CommentLikeRepository) CountByComment(commentID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CommentLikeRepository) CountsByCommentIDs(commentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return counts, nil
	}

	type row struct {
		CommentID uint
		Total     int64
	}
	var rows []row
	if err := r.db.Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS total").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, rr := range rows {
		counts[rr.CommentID] = rr.Total
	}
	return counts, nil
}
