package llm

import (
	"sort"
	"unicode/utf8"
)

// TrendingScore 纯函数热度分，不依赖任何模型：
// 互动分 likes*2 + comments*3，长文、合适的标题长度、简介与配图各有加分
func TrendingScore(post *PostRecord) int {
	score := post.Likes*2 + post.Comments*3

	contentLen := utf8.RuneCountInString(post.Content)
	if contentLen > 500 {
		score += 10
	}
	if contentLen > 1000 {
		score += 20
	}

	titleLen := utf8.RuneCountInString(post.Title)
	if titleLen >= 30 && titleLen <= 60 {
		score += 5
	}

	if post.Description != "" {
		score += 5
	}
	if post.Image != "" {
		score += 3
	}

	return score
}

// RankTrending 按热度分降序取前 limit 条，返回带 ai_score 的副本，
// 不改动输入记录。同分保持原始相对顺序
func RankTrending(posts []*PostRecord, limit int) []*PostRecord {
	if limit <= 0 {
		return []*PostRecord{}
	}

	ranked := make([]*PostRecord, 0, len(posts))
	for _, post := range posts {
		item := *post
		item.AIScore = TrendingScore(post)
		ranked = append(ranked, &item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AIScore > ranked[j].AIScore
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}
