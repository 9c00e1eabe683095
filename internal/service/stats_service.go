package service

import "photo-share-server/internal/common"

// SystemStats 站点概况
type SystemStats struct {
	Users  int64 `json:"users"`
	Images int64 `json:"images"`
}

// GetSystemStats 返回注册用户数与图片总数。
func (s *AppService) GetSystemStats() (*SystemStats, error) {
	users, err := s.repos.User.CountAll()
	if err != nil {
		return nil, common.NewInternalError("获取站点统计失败")
	}

	images, err := s.repos.Image.CountAll()
	if err != nil {
		return nil, common.NewInternalError("获取站点统计失败")
	}

	return &SystemStats{Users: users, Images: images}, nil
}
