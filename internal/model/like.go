package model

import "time"

// Like 图片点赞记录
// 唯一键: image_id + user_id，同一用户对同一图片至多一行
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:idx_image_user_like,priority:1"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_image_user_like,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Image     Image     `gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}

// CommentLike 评论点赞记录
// 与图片点赞相互独立，唯一键: comment_id + user_id
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID uint      `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_user_like,priority:1"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_user_like,priority:2"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Comment   Comment   `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
