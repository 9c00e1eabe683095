package service

import (
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/model"
	"time"
)

// GalleryComment 画廊中嵌入的评论视图
type GalleryComment struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	LikesCount int64     `json:"likes_count"`
}

// GalleryImage 画廊中的图片视图：图片本体 + 上传者 + 点赞数 + 评论列表
type GalleryImage struct {
	model.Image
	Username   string           `json:"username"`
	URL        string           `json:"url"`
	LikesCount int64            `json:"likes_count"`
	Comments   []GalleryComment `json:"comments"`
}

// ListGalleryImages 返回全部图片的聚合视图，按上传时间倒序。
// 聚合分四步查询后在内存组装，等价于单条大联表，
// 但在 sqlite/mysql/postgres 三种方言下行为一致。
func (s *AppService) ListGalleryImages() ([]GalleryImage, error) {
	images, err := s.repos.Image.ListAllNewestFirst()
	if err != nil {
		return nil, common.NewInternalError("获取图片列表失败")
	}

	imageIDs := make([]uint, 0, len(images))
	for _, img := range images {
		imageIDs = append(imageIDs, img.ID)
	}

	comments, err := s.repos.Comment.ListByImageIDs(imageIDs)
	if err != nil {
		return nil, common.NewInternalError("获取评论列表失败")
	}

	likeCounts, err := s.repos.Like.CountsByImageIDs(imageIDs)
	if err != nil {
		return nil, common.NewInternalError("获取点赞数据失败")
	}

	commentIDs := make([]uint, 0, len(comments))
	for _, cm := range comments {
		commentIDs = append(commentIDs, cm.ID)
	}
	commentLikeCounts, err := s.repos.CommentLike.CountsByCommentIDs(commentIDs)
	if err != nil {
		return nil, common.NewInternalError("获取点赞数据失败")
	}

	commentsByImage := make(map[uint][]GalleryComment, len(images))
	for _, cm := range comments {
		commentsByImage[cm.ImageID] = append(commentsByImage[cm.ImageID], GalleryComment{
			ID:         cm.ID,
			UserID:     cm.UserID,
			Username:   cm.User.Username,
			Text:       cm.Text,
			CreatedAt:  cm.CreatedAt,
			LikesCount: commentLikeCounts[cm.ID],
		})
	}

	urlPrefix := config.Get().Upload.URLPrefix

	gallery := make([]GalleryImage, 0, len(images))
	for _, img := range images {
		entry := GalleryImage{
			Image:      img,
			Username:   img.User.Username,
			URL:        urlPrefix + img.Path,
			LikesCount: likeCounts[img.ID],
			Comments:   commentsByImage[img.ID],
		}
		if entry.Comments == nil {
			entry.Comments = []GalleryComment{}
		}
		gallery = append(gallery, entry)
	}

	return gallery, nil
}
