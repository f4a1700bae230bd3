package llm

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

// longFormLimit 长文任务送入模型的内容前缀长度
const longFormLimit = 1000

// insightsContextLimit 目的地洞察的上下文前缀长度
const insightsContextLimit = 500

// maxTags 模型路径标签数量上限
const maxTags = 8

// maxFallbackTags 降级路径标签数量上限
const maxFallbackTags = 5

// ContentCritique 内容改进建议
type ContentCritique struct {
	GrammarFixes     []string `json:"grammar_fixes"`
	ReadabilityScore string   `json:"readability_score"`
	Suggestions      []string `json:"suggestions"`
	MissingElements  []string `json:"missing_elements"`
}

// DestinationInsights 目的地洞察
type DestinationInsights struct {
	BestTime    string `json:"best_time"`
	Attractions string `json:"attractions"`
	Tips        string `json:"tips"`
	Budget      string `json:"budget"`
	Etiquette   string `json:"etiquette"`
}

// Describe 生成帖子简介，失败时走模板降级
func (s *Engine) Describe(ctx context.Context, content string, title string) string {
	if s.generator == nil {
		return fallbackDescription(content, title)
	}

	userPrompt := fmt.Sprintf("Title: %s\nContent: %s", title, truncateRunes(content, longFormLimit))
	resp, err := s.generator.Generate(ctx, s.prompts.Describe, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "简介生成-AI大模型请求失败", "err", err)
		return fallbackDescription(content, title)
	}
	return strings.TrimSpace(resp)
}

// SuggestTitle 生成标题建议，失败时走模板降级
func (s *Engine) SuggestTitle(ctx context.Context, content string, currentTitle string) string {
	if s.generator == nil {
		return fallbackTitle(content, currentTitle)
	}

	userPrompt := fmt.Sprintf("Current Title: %s\nContent: %s", currentTitle, truncateRunes(content, longFormLimit))
	resp, err := s.generator.Generate(ctx, s.prompts.Title, userPrompt, 0.8)
	if err != nil {
		log.ErrorContext(ctx, "标题生成-AI大模型请求失败", "err", err)
		return fallbackTitle(content, currentTitle)
	}
	return strings.TrimSpace(resp)
}

// GenerateTags 生成标签，模型输出按逗号切分后归一去重，失败时走关键词降级
func (s *Engine) GenerateTags(ctx context.Context, content string, title string) []string {
	if s.generator == nil {
		return fallbackTags(content)
	}

	userPrompt := fmt.Sprintf("Title: %s\nContent: %s", title, truncateRunes(content, longFormLimit))
	resp, err := s.generator.Generate(ctx, s.prompts.Tags, userPrompt, 0.5)
	if err != nil {
		log.ErrorContext(ctx, "标签生成-AI大模型请求失败", "err", err)
		return fallbackTags(content)
	}

	tags := make([]string, 0, maxTags)
	seen := make(map[string]bool)
	for _, raw := range strings.Split(resp, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}

	if len(tags) == 0 {
		return fallbackTags(content)
	}
	return tags
}

// CritiqueContent 分析内容并给出改进建议，解析失败一律走降级，
// 不返回半填充的结构
func (s *Engine) CritiqueContent(ctx context.Context, content string) *ContentCritique {
	if s.generator == nil {
		return fallbackCritique()
	}

	resp, err := s.generator.Generate(ctx, s.prompts.Critique, truncateRunes(content, longFormLimit), 0.3)
	if err != nil {
		log.ErrorContext(ctx, "内容建议-AI大模型请求失败", "err", err)
		return fallbackCritique()
	}

	critique := &ContentCritique{}
	if err = json.Unmarshal([]byte(stripFences(resp)), critique); err != nil {
		log.ErrorContext(ctx, "内容建议-AI大模型返回数据解析失败", "err", err)
		return fallbackCritique()
	}
	return critique
}

// DestinationInsights 生成目的地洞察，解析失败走固定建议降级
func (s *Engine) DestinationInsights(ctx context.Context, destination string, content string) *DestinationInsights {
	if s.generator == nil {
		return fallbackInsights()
	}

	contextText := "General travel information"
	if content != "" {
		contextText = truncateRunes(content, insightsContextLimit)
	}
	userPrompt := fmt.Sprintf("Destination: %s\nContent context: %s", destination, contextText)

	resp, err := s.generator.Generate(ctx, s.prompts.Insights, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "目的地洞察-AI大模型请求失败", "err", err)
		return fallbackInsights()
	}

	insights := &DestinationInsights{}
	if err = json.Unmarshal([]byte(stripFences(resp)), insights); err != nil {
		log.ErrorContext(ctx, "目的地洞察-AI大模型返回数据解析失败", "err", err)
		return fallbackInsights()
	}
	return insights
}

func fallbackDescription(content string, title string) string {
	subject := "this amazing destination"
	if title != "" {
		subject = strings.ToLower(title)
	}
	words := strings.Fields(content)
	if len(words) > 5 {
		words = words[:5]
	}
	return fmt.Sprintf("Discover %s and experience %s...", subject, strings.Join(words, ", "))
}

func fallbackTitle(content string, currentTitle string) string {
	if currentTitle != "" {
		return currentTitle
	}
	words := strings.Fields(content)
	if len(words) > 2 {
		words = words[:2]
	}
	return fmt.Sprintf("Amazing %s Experience", strings.Join(words, ", "))
}

// 降级标签的类目关键词，按扫描顺序每组最多产出一个标签
var fallbackTagGroups = []struct {
	tag      string
	keywords []string
}{
	{"beach", []string{"beach", "ocean", "sea", "coast"}},
	{"mountain", []string{"mountain", "hiking", "trail", "peak"}},
	{"city", []string{"city", "urban", "downtown"}},
	{"food", []string{"food", "restaurant", "cuisine", "eat"}},
	{"culture", []string{"culture", "museum", "history", "traditional"}},
}

func fallbackTags(content string) []string {
	contentLower := strings.ToLower(content)

	tags := make([]string, 0, maxFallbackTags)
	for _, group := range fallbackTagGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(contentLower, keyword) {
				tags = append(tags, group.tag)
				break
			}
		}
		if len(tags) == maxFallbackTags {
			break
		}
	}
	return tags
}

func fallbackCritique() *ContentCritique {
	return &ContentCritique{
		GrammarFixes:     []string{"Check for typos and grammar"},
		ReadabilityScore: "7",
		Suggestions: []string{
			"Add more descriptive details",
			"Include personal experiences",
			"Add practical travel tips",
		},
		MissingElements: []string{"Travel costs", "Best time to visit", "Local recommendations"},
	}
}

func fallbackInsights() *DestinationInsights {
	return &DestinationInsights{
		BestTime:    "Spring and Fall for mild weather",
		Attractions: "Check local tourism websites for current attractions",
		Tips:        "Research local customs and language basics",
		Budget:      "Plan for accommodation, food, and activities",
		Etiquette:   "Be respectful of local customs and traditions",
	}
}
