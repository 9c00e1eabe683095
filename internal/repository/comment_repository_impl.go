package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByImageIDs(imageIDs []uint) ([]model.Comment, error) {
	if len(imageIDs) == 0 {
		return nil, nil
	}
	var comments []model.Comment
	if err := r.db.Preload("User").
		Where("image_id IN ?", imageIDs).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
