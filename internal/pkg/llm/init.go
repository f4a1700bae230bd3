package llm

import (
	"WanderLuxe/internal/api/config"
	log "log/slog"
)

// InitEngine 启动时独立获取三个能力提供方，任何一个失败只记日志降级，
// 不阻断进程启动
func InitEngine() *Engine {
	cfg := config.Cfg

	var generator TextGenerator
	if g, err := newOpenAIGenerator(cfg.LLM); err != nil {
		log.Warn("文本生成模型初始化失败，相关功能降级", "err", err)
	} else {
		generator = g
		log.Info("文本生成模型初始化成功", "model", cfg.LLM.TextModel)
	}

	var embedder Embedder
	if e, err := newOpenAIEmbedder(cfg.LLM); err != nil {
		log.Warn("向量模型初始化失败，相似推荐降级", "err", err)
	} else {
		embedder = e
		log.Info("向量模型初始化成功", "model", cfg.LLM.EmbedModel)
	}

	var classifier ToxicityClassifier
	if c, err := newHTTPClassifier(cfg.Moderation); err != nil {
		log.Warn("内容安全分类器初始化失败，审核放行", "err", err)
	} else {
		classifier = c
		log.Info("内容安全分类器初始化成功", "url", cfg.Moderation.URL)
	}

	prompts := Prompts{
		Describe: readPrompt(cfg.LLM.PromptsPath.Describe),
		Title:    readPrompt(cfg.LLM.PromptsPath.Title),
		Tags:     readPrompt(cfg.LLM.PromptsPath.Tags),
		Critique: readPrompt(cfg.LLM.PromptsPath.Critique),
		Insights: readPrompt(cfg.LLM.PromptsPath.Insights),
	}

	cache := NewEmbeddingCache(cfg.Cache.Capacity)

	return NewEngine(generator, embedder, classifier, cache, prompts)
}
