package llm

import (
	"context"
	log "log/slog"
)

// Prompts 各生成任务的系统提示词
type Prompts struct {
	Describe string
	Title    string
	Tags     string
	Critique string
	Insights string
}

// EngineHealth 三个能力提供方的可用状态
type EngineHealth struct {
	GeneratorAvailable  bool `json:"generator_available"`
	EmbedderAvailable   bool `json:"embedder_available"`
	ClassifierAvailable bool `json:"classifier_available"`
}

// Engine 内容智能引擎。三个能力提供方均可缺席，缺席时所有操作
// 走确定性降级路径，对外永不报错
type Engine struct {
	generator  TextGenerator
	embedder   Embedder
	classifier ToxicityClassifier
	cache      *EmbeddingCache
	prompts    Prompts
}

// NewEngine 组装引擎，任何提供方为 nil 都是合法状态
func NewEngine(generator TextGenerator, embedder Embedder, classifier ToxicityClassifier, cache *EmbeddingCache, prompts Prompts) *Engine {
	if cache == nil {
		cache = NewEmbeddingCache(DefaultCacheCapacity)
	}
	return &Engine{
		generator:  generator,
		embedder:   embedder,
		classifier: classifier,
		cache:      cache,
		prompts:    prompts,
	}
}

func (s *Engine) Health() EngineHealth {
	return EngineHealth{
		GeneratorAvailable:  s.generator != nil,
		EmbedderAvailable:   s.embedder != nil,
		ClassifierAvailable: s.classifier != nil,
	}
}

// embed 取文本向量，优先命中缓存；embedder 缺席或单次调用失败均返回 false，
// 调用方据此走降级路径。单次失败不摘除提供方
func (s *Engine) embed(ctx context.Context, text string) ([]float32, bool) {
	if s.embedder == nil {
		return nil, false
	}

	fp := Fingerprint(text)
	if vector, ok := s.cache.Get(fp); ok {
		return vector, true
	}

	vector, err := s.embedder.Embed(ctx, text)
	if err != nil {
		log.ErrorContext(ctx, "向量生成-AI大模型请求失败", "err", err)
		return nil, false
	}

	s.cache.Put(fp, vector)
	return vector, true
}
