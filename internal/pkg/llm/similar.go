package llm

import (
	"context"
	"math"
	"sort"
)

// FindSimilar 对候选集做近邻检索，返回相似度降序的前 k 条。
// embedder 缺席、候选为空或全部向量化失败时退回原始顺序的前 k 条，
// 结果对相同输入与缓存状态是确定的
func (s *Engine) FindSimilar(ctx context.Context, query string, candidates []*PostRecord, k int) []*PostRecord {
	if k <= 0 {
		return []*PostRecord{}
	}

	if s.embedder == nil || len(candidates) == 0 {
		return firstK(candidates, k)
	}

	queryVector, ok := s.embed(ctx, query)
	if !ok {
		return firstK(candidates, k)
	}

	type scored struct {
		post *PostRecord
		sim  float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, post := range candidates {
		vector, ok := s.embed(ctx, post.CompositeText())
		if !ok {
			// 向量化失败的候选不参与排名
			continue
		}
		ranked = append(ranked, scored{post: post, sim: cosineSimilarity(queryVector, vector)})
	}

	if len(ranked) == 0 {
		return firstK(candidates, k)
	}

	// 稳定排序，相同分数保持原始相对顺序
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sim > ranked[j].sim
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	result := make([]*PostRecord, 0, k)
	for _, item := range ranked[:k] {
		result = append(result, item.post)
	}
	return result
}

func firstK(candidates []*PostRecord, k int) []*PostRecord {
	if k > len(candidates) {
		k = len(candidates)
	}
	result := make([]*PostRecord, 0, k)
	result = append(result, candidates[:k]...)
	return result
}

// cosineSimilarity 余弦相似度，任一向量模长为零时定义为 0
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
