package repository

import "photo-share-server/internal/model"

type ImageStore interface {
	Create(image *model.Image) error
	FindByID(id uint) (*model.Image, error)
	// FindOwnedByID 获取指定用户名下的图片，用于鉴权后的删除
	FindOwnedByID(id uint, userID uint) (*model.Image, error)
	Delete(image *model.Image) error
	// ListAllNewestFirst 返回全部图片（含上传者），按上传时间倒序
	ListAllNewestFirst() ([]model.Image, error)
	CountAll() (int64, error)
}
