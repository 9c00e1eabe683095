package repository

import "photo-share-server/internal/model"

type CommentStore interface {
	Create(comment *model.Comment) error
	FindByID(id uint) (*model.Comment, error)
	// ListByImageIDs 返回指定图片集下的全部评论（含作者），按创建时间正序
	ListByImageIDs(imageIDs []uint) ([]model.Comment, error)
}
