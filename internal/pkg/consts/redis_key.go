package consts

const (
	TrendingPostsKey = "post:trending"
)

const (
	TrendingRefreshLock = "lock:trending:refresh"
)
