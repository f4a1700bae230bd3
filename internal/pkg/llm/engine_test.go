package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	resp       string
	err        error
	calls      int
	lastSystem string
	lastUser   string
	lastTemp   float64
}

func (s *stubGenerator) Generate(_ context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	s.lastTemp = temp
	return s.resp, s.err
}

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if vector, ok := s.vectors[text]; ok {
		return vector, nil
	}
	return []float32{1, 0, 0}, nil
}

type stubClassifier struct {
	scores []LabelScore
	err    error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) ([]LabelScore, error) {
	return s.scores, s.err
}

func newTestEngine(generator TextGenerator, embedder Embedder, classifier ToxicityClassifier) *Engine {
	return NewEngine(generator, embedder, classifier, nil, Prompts{
		Describe: "describe",
		Title:    "title",
		Tags:     "tags",
		Critique: "critique",
		Insights: "insights",
	})
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(&stubGenerator{}, nil, &stubClassifier{})

	health := engine.Health()
	assert.True(t, health.GeneratorAvailable)
	assert.False(t, health.EmbedderAvailable)
	assert.True(t, health.ClassifierAvailable)
}

func TestEmbedHitsCacheOnRepeat(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{"hello": {0.1, 0.2}}}
	engine := newTestEngine(nil, embedder, nil)

	first, ok := engine.embed(context.Background(), "hello")
	require.True(t, ok)
	second, ok := engine.embed(context.Background(), "hello")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, embedder.calls)
}

func TestEmbedEmbedderAbsent(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	vector, ok := engine.embed(context.Background(), "hello")
	assert.False(t, ok)
	assert.Nil(t, vector)
}

func TestEmbedFailureNotCached(t *testing.T) {
	embedder := &stubEmbedder{err: errors.New("timeout")}
	engine := newTestEngine(nil, embedder, nil)

	_, ok := engine.embed(context.Background(), "hello")
	require.False(t, ok)
	_, ok = engine.embed(context.Background(), "hello")
	require.False(t, ok)

	// 失败不写缓存，恢复后应重新请求
	assert.Equal(t, 2, embedder.calls)
	assert.Equal(t, 0, engine.cache.Len())
}
