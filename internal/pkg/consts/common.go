package consts

const (
	// PostStatusPublished 已发布，只有已发布的帖子进入语料与热度榜
	PostStatusPublished = 1
)

const (
	DefaultSimilarK      = 5
	DefaultTrendingLimit = 5
	DefaultCorpusSize    = 200
)
