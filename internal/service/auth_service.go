package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/model"
	"photo-share-server/internal/utils"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser 执行用户注册并返回新用户的公开信息。
func (s *AppService) RegisterUser(username, password string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}

	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	taken, err := s.repos.User.UsernameExists(username)
	if err != nil {
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}
	if taken {
		return nil, common.NewConflictError("用户名已存在")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("密码加密失败")
	}

	newUser := model.User{
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.repos.User.Create(&newUser); err != nil {
		// 并发注册同名用户时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, common.NewConflictError("用户名已存在")
		}
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	return &newUser, nil
}

// LoginUser 执行登录鉴权并返回登录令牌。
// 用户不存在与密码错误返回相同的提示，避免用户名枚举。
func (s *AppService) LoginUser(username, password string) (string, error) {
	user, err := s.repos.User.FindByUsername(username)
	if err != nil {
		return "", common.NewValidationError("用户名或密码错误")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", common.NewValidationError("用户名或密码错误")
	}

	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return "", common.NewInternalError("登录失败，请稍后重试")
	}

	return token, nil
}
