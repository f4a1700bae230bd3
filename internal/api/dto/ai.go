package dto

// GenerateRequest 文本生成类请求（简介、标题、标签）
type GenerateRequest struct {
	Content string `json:"content" binding:"required" validate:"min=1"`
	Title   string `json:"title" validate:"max=255"`
}

// ImproveContentRequest 内容建议请求
type ImproveContentRequest struct {
	Content string `json:"content" binding:"required" validate:"min=1"`
}

// TravelInsightsRequest 目的地洞察请求
type TravelInsightsRequest struct {
	Destination string `json:"destination" binding:"required" validate:"min=1,max=255"`
	Content     string `json:"content"`
}

// ModerateRequest 内容审核请求
type ModerateRequest struct {
	Content string `json:"content" binding:"required" validate:"min=1"`
}

// SimilarPostsRequest 相似帖子请求，post_id 与 query 二选一
type SimilarPostsRequest struct {
	PostID uint64 `json:"post_id"`
	Query  string `json:"query"`
	TopK   int    `json:"top_k" validate:"max=50"`
}

// DescriptionDTO 简介生成结果
type DescriptionDTO struct {
	Description string `json:"description"`
}

// TitleDTO 标题建议结果
type TitleDTO struct {
	Title string `json:"title"`
}

// TagsDTO 标签生成结果
type TagsDTO struct {
	Tags []string `json:"tags"`
}
