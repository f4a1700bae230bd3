package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeUsesGenerator(t *testing.T) {
	generator := &stubGenerator{resp: "  A breathtaking coastal escape.  "}
	engine := newTestEngine(generator, nil, nil)

	description := engine.Describe(context.Background(), "Waves crash on white sand.", "Bali Escape")
	assert.Equal(t, "A breathtaking coastal escape.", description)
	assert.Equal(t, "describe", generator.lastSystem)
	assert.Contains(t, generator.lastUser, "Bali Escape")
	assert.InDelta(t, 0.7, generator.lastTemp, 1e-9)
}

func TestDescribeFallback(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	description := engine.Describe(context.Background(),
		"Golden sands stretch for miles under the sun", "Bali Sunset")
	assert.Equal(t, "Discover bali sunset and experience Golden, sands, stretch, for, miles...", description)
}

func TestDescribeFallbackWithoutTitle(t *testing.T) {
	engine := newTestEngine(&stubGenerator{err: errors.New("timeout")}, nil, nil)

	description := engine.Describe(context.Background(), "Quiet trails", "")
	assert.Equal(t, "Discover this amazing destination and experience Quiet, trails...", description)
}

func TestSuggestTitleFallbackKeepsCurrent(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	assert.Equal(t, "My Trip", engine.SuggestTitle(context.Background(), "some content", "My Trip"))
	assert.Equal(t, "Amazing Hiking, the Experience",
		engine.SuggestTitle(context.Background(), "Hiking the alps in june", ""))
}

func TestGenerateTagsNormalizesModelOutput(t *testing.T) {
	generator := &stubGenerator{resp: "Beach, BEACH, Sunset , ,Luxury Travel"}
	engine := newTestEngine(generator, nil, nil)

	tags := engine.GenerateTags(context.Background(), "content", "title")
	assert.Equal(t, []string{"beach", "sunset", "luxury travel"}, tags)
	assert.InDelta(t, 0.5, generator.lastTemp, 1e-9)
}

func TestGenerateTagsCapped(t *testing.T) {
	generator := &stubGenerator{resp: "a,b,c,d,e,f,g,h,i,j"}
	engine := newTestEngine(generator, nil, nil)

	tags := engine.GenerateTags(context.Background(), "content", "title")
	assert.Len(t, tags, 8)
}

func TestGenerateTagsFallbackKeywords(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	tags := engine.GenerateTags(context.Background(),
		"We left the beach early and spent the day hiking in the mountains", "")
	assert.Equal(t, []string{"beach", "mountain"}, tags)
}

func TestGenerateTagsFallbackOnEmptyOutput(t *testing.T) {
	generator := &stubGenerator{resp: " , , "}
	engine := newTestEngine(generator, nil, nil)

	tags := engine.GenerateTags(context.Background(), "street food and museums in the city", "")
	assert.Equal(t, []string{"city", "food", "culture"}, tags)
}

func TestCritiqueContentParsesFencedJSON(t *testing.T) {
	generator := &stubGenerator{resp: "```json\n{\"grammar_fixes\":[\"fix a\"],\"readability_score\":\"8\",\"suggestions\":[\"more detail\"],\"missing_elements\":[]}\n```"}
	engine := newTestEngine(generator, nil, nil)

	critique := engine.CritiqueContent(context.Background(), "content")
	require.NotNil(t, critique)
	assert.Equal(t, []string{"fix a"}, critique.GrammarFixes)
	assert.Equal(t, "8", critique.ReadabilityScore)
	assert.InDelta(t, 0.3, generator.lastTemp, 1e-9)
}

func TestCritiqueContentFallbackOnBadJSON(t *testing.T) {
	generator := &stubGenerator{resp: "not json at all"}
	engine := newTestEngine(generator, nil, nil)

	critique := engine.CritiqueContent(context.Background(), "content")
	assert.Equal(t, fallbackCritique(), critique)
}

func TestDestinationInsightsParsesJSON(t *testing.T) {
	generator := &stubGenerator{resp: "{\"best_time\":\"May\",\"attractions\":\"Temples\",\"tips\":\"Cash only\",\"budget\":\"Moderate\",\"etiquette\":\"Dress modestly\"}"}
	engine := newTestEngine(generator, nil, nil)

	insights := engine.DestinationInsights(context.Background(), "Kyoto", "Temples and gardens everywhere")
	require.NotNil(t, insights)
	assert.Equal(t, "May", insights.BestTime)
	assert.Contains(t, generator.lastUser, "Kyoto")
	assert.Contains(t, generator.lastUser, "Temples and gardens")
}

func TestDestinationInsightsDefaultContext(t *testing.T) {
	generator := &stubGenerator{resp: "{}"}
	engine := newTestEngine(generator, nil, nil)

	engine.DestinationInsights(context.Background(), "Kyoto", "")
	assert.Contains(t, generator.lastUser, "General travel information")
}

func TestDestinationInsightsFallbackOnError(t *testing.T) {
	engine := newTestEngine(&stubGenerator{err: errors.New("timeout")}, nil, nil)

	insights := engine.DestinationInsights(context.Background(), "Kyoto", "")
	assert.Equal(t, fallbackInsights(), insights)
}

// 所有提供方缺席时，每个操作都必须返回可用结果
func TestAllOperationsTotalWithoutProviders(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)
	ctx := context.Background()

	assert.NotEmpty(t, engine.Describe(ctx, "content here", "title"))
	assert.NotEmpty(t, engine.SuggestTitle(ctx, "content here", ""))
	assert.NotNil(t, engine.GenerateTags(ctx, "content here", ""))
	assert.NotNil(t, engine.CritiqueContent(ctx, "content here"))
	assert.NotNil(t, engine.DestinationInsights(ctx, "Paris", ""))
	assert.NotNil(t, engine.Moderate(ctx, "content here"))
	assert.NotNil(t, engine.FindSimilar(ctx, "query", testCorpus(), 2))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "你好世", truncateRunes("你好世界", 3))
	assert.Equal(t, "abc", truncateRunes("abc", 10))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, "{\"a\":1}", stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "{\"a\":1}", stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, "plain", stripFences("plain"))
}

func TestLongContentTruncatedInPrompt(t *testing.T) {
	generator := &stubGenerator{resp: "ok"}
	engine := newTestEngine(generator, nil, nil)

	engine.Describe(context.Background(), strings.Repeat("a", 2000), "title")
	assert.Contains(t, generator.lastUser, strings.Repeat("a", 1000))
	assert.NotContains(t, generator.lastUser, strings.Repeat("a", 1001))
}
