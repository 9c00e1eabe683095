package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func (r *ImageRepository) Create(image *model.Image) error {
	return r.db.Create(image).Error
}

func (r *ImageRepository) FindByID(id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) FindOwnedByID(id uint, userID uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) Delete(image *model.Image) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 点赞与评论随图片一并清理，避免悬挂引用
		if err := tx.Where("image_id = ?", image.ID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		var commentIDs []uint
		if err := tx.Model(&model.Comment{}).Where("image_id = ?", image.ID).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("image_id = ?", image.ID).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(image).Error
	})
}

func (r *ImageRepository) ListAllNewestFirst() ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Preload("User").Order("uploaded_at DESC, id DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Image{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
