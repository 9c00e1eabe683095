package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Photo Share Server"

	// ApplicationVersion 后端版本号
	ApplicationVersion = "1.0.0"

	// TokenIssuer JWT 签发者标识
	TokenIssuer = "photo-share-server"
)
