package repository

import "photo-share-server/internal/model"

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	UsernameExists(username string) (bool, error)
	CountAll() (int64, error)
}
