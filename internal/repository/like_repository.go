package repository

// 图片点赞与评论点赞是两张相互独立的关系表，
// 各自以 (目标, 用户) 组合唯一键约束"至多一行"。

type LikeStore interface {
	// Create 插入点赞行；同键重复插入由唯一索引拒绝（gorm.ErrDuplicatedKey）
	Create(userID, imageID uint) error
	// Delete 删除点赞行，返回是否确有行被删除
	Delete(userID, imageID uint) (bool, error)
	// CountByImage 统计单张图片当前的点赞总数
	CountByImage(imageID uint) (int64, error)
	// CountsByImageIDs 按图片分组统计点赞数
	CountsByImageIDs(imageIDs []uint) (map[uint]int64, error)
}

type CommentLikeStore interface {
	Create(userID, commentID uint) error
	Delete(userID, commentID uint) (bool, error)
	CountByComment(commentID uint) (int64, error)
	CountsByCommentIDs(commentIDs []uint) (map[uint]int64, error)
}
