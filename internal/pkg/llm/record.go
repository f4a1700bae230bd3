package llm

// PostRecord 引擎输入输出的帖子记录，由持久层提供，引擎只读不改
type PostRecord struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Destination string `json:"destination,omitempty"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`

	// AIScore 热度分，仅在 RankTrending 返回的副本上有效
	AIScore int `json:"ai_score,omitempty"`
}

// CompositeText 相似度计算使用的拼接文本
func (p *PostRecord) CompositeText() string {
	return p.Title + " " + p.Content + " " + p.Description
}
