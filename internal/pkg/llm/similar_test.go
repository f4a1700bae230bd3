package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []*PostRecord {
	return []*PostRecord{
		{ID: 1, Title: "beach"},
		{ID: 2, Title: "coast"},
		{ID: 3, Title: "museum"},
	}
}

// mappedEmbedder 以候选的组合文本为键返回固定向量
func mappedEmbedder(query string, posts []*PostRecord, vectors [][]float32) *stubEmbedder {
	mapping := map[string][]float32{query: {1, 0}}
	for i, post := range posts {
		mapping[post.CompositeText()] = vectors[i]
	}
	return &stubEmbedder{vectors: mapping}
}

func TestFindSimilarOrdersByCosine(t *testing.T) {
	posts := testCorpus()
	embedder := mappedEmbedder("query", posts, [][]float32{
		{0, 1}, // sim 0
		{1, 0}, // sim 1
		{1, 1}, // sim 0.707
	})
	engine := newTestEngine(nil, embedder, nil)

	result := engine.FindSimilar(context.Background(), "query", posts, 3)
	require.Len(t, result, 3)
	assert.Equal(t, uint64(2), result[0].ID)
	assert.Equal(t, uint64(3), result[1].ID)
	assert.Equal(t, uint64(1), result[2].ID)
}

func TestFindSimilarRespectsK(t *testing.T) {
	posts := testCorpus()
	embedder := mappedEmbedder("query", posts, [][]float32{
		{0, 1},
		{1, 0},
		{1, 1},
	})
	engine := newTestEngine(nil, embedder, nil)

	result := engine.FindSimilar(context.Background(), "query", posts, 2)
	require.Len(t, result, 2)
	assert.Equal(t, uint64(2), result[0].ID)

	assert.Empty(t, engine.FindSimilar(context.Background(), "query", posts, 0))
	assert.Empty(t, engine.FindSimilar(context.Background(), "query", posts, -1))
}

func TestFindSimilarSameScoreKeepsOrder(t *testing.T) {
	posts := testCorpus()
	embedder := mappedEmbedder("query", posts, [][]float32{
		{1, 0},
		{2, 0},
		{3, 0},
	})
	engine := newTestEngine(nil, embedder, nil)

	result := engine.FindSimilar(context.Background(), "query", posts, 3)
	require.Len(t, result, 3)
	assert.Equal(t, uint64(1), result[0].ID)
	assert.Equal(t, uint64(2), result[1].ID)
	assert.Equal(t, uint64(3), result[2].ID)
}

func TestFindSimilarFallbackWithoutEmbedder(t *testing.T) {
	posts := testCorpus()
	engine := newTestEngine(nil, nil, nil)

	result := engine.FindSimilar(context.Background(), "query", posts, 2)
	require.Len(t, result, 2)
	assert.Equal(t, uint64(1), result[0].ID)
	assert.Equal(t, uint64(2), result[1].ID)
}

func TestFindSimilarFallbackOnQueryFailure(t *testing.T) {
	posts := testCorpus()
	engine := newTestEngine(nil, &stubEmbedder{err: errors.New("timeout")}, nil)

	result := engine.FindSimilar(context.Background(), "query", posts, 5)
	require.Len(t, result, 3)
	assert.Equal(t, uint64(1), result[0].ID)
}

func TestFindSimilarEmptyCandidates(t *testing.T) {
	engine := newTestEngine(nil, &stubEmbedder{}, nil)

	assert.Empty(t, engine.FindSimilar(context.Background(), "query", nil, 5))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 2}, []float32{2, 4}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
