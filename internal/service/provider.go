package service

import (
	"photo-share-server/internal/repository"
)

type AppService struct {
	repos *repository.Repositories
}

func NewAppService(repos *repository.Repositories) *AppService {
	return &AppService{repos: repos}
}
