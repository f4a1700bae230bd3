package llm

import (
	"WanderLuxe/internal/api/config"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// TextGenerator 文本生成能力
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error)
}

// Embedder 向量化能力
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// LabelScore 分类器返回的单个标签得分
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ToxicityClassifier 内容安全分类能力
type ToxicityClassifier interface {
	Classify(ctx context.Context, text string) ([]LabelScore, error)
}

type openAIGenerator struct {
	client *openai.LLM
	model  string
}

func newOpenAIGenerator(cfg config.LLMConfig) (*openAIGenerator, error) {
	client, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		return nil, err
	}
	return &openAIGenerator{client: client, model: cfg.TextModel}, nil
}

func (s *openAIGenerator) Generate(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.InfoContext(ctx, "正在请求AI大模型")
	resp, err := s.client.GenerateContent(ctx, messages,
		llms.WithModel(s.model),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("AI大模型返回数据为空")
	}
	return resp.Choices[0].Content, nil
}

type openAIEmbedder struct {
	client *openai.LLM
}

func newOpenAIEmbedder(cfg config.LLMConfig) (*openAIEmbedder, error) {
	client, err := openai.New(
		openai.WithModel(cfg.EmbedModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
		openai.WithEmbeddingModel(cfg.EmbedModel),
	)
	if err != nil {
		return nil, err
	}
	return &openAIEmbedder{client: client}, nil
}

func (s *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := EmbedSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer EmbedSem.Release(1)

	vectors, err := s.client.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, errors.New("vector is empty")
	}
	return vectors[0], nil
}

type httpClassifier struct {
	client *resty.Client
	url    string
}

func newHTTPClassifier(cfg config.ModerationConfig) (*httpClassifier, error) {
	if cfg.URL == "" {
		return nil, errors.New("moderation url is empty")
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &httpClassifier{client: client, url: cfg.URL}, nil
}

// Classify 请求推理服务，返回逐标签得分；接口为 HF text-classification 风格
func (s *httpClassifier) Classify(ctx context.Context, text string) ([]LabelScore, error) {
	if err := ClassifySem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer ClassifySem.Release(1)

	var result [][]LabelScore
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"inputs": text}).
		SetResult(&result).
		Post(s.url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("classifier status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result) == 0 {
		return nil, errors.New("classifier result is empty")
	}
	return result[0], nil
}
