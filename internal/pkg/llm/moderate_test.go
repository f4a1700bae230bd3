package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModerateToxicContent(t *testing.T) {
	classifier := &stubClassifier{scores: []LabelScore{
		{Label: "toxic", Score: 0.6},
		{Label: "insult", Score: 0.2},
	}}
	engine := newTestEngine(nil, nil, classifier)

	verdict := engine.Moderate(context.Background(), "bad text")
	require.NotNil(t, verdict)
	assert.False(t, verdict.IsSafe)
	assert.InDelta(t, 0.6, verdict.ToxicScore, 1e-9)
	assert.InDelta(t, 0.4, verdict.Confidence, 1e-9)
	assert.Equal(t, []string{"toxic:0.60"}, verdict.Issues)
}

func TestModerateSafeContent(t *testing.T) {
	classifier := &stubClassifier{scores: []LabelScore{
		{Label: "toxic", Score: 0.1},
		{Label: "obscene", Score: 0.3},
	}}
	engine := newTestEngine(nil, nil, classifier)

	verdict := engine.Moderate(context.Background(), "nice text")
	assert.True(t, verdict.IsSafe)
	assert.InDelta(t, 0.3, verdict.ToxicScore, 1e-9)
	assert.InDelta(t, 0.7, verdict.Confidence, 1e-9)
	assert.Empty(t, verdict.Issues)
}

func TestModerateIgnoresUnknownLabels(t *testing.T) {
	classifier := &stubClassifier{scores: []LabelScore{
		{Label: "positive", Score: 0.99},
		{Label: "threat", Score: 0.2},
	}}
	engine := newTestEngine(nil, nil, classifier)

	verdict := engine.Moderate(context.Background(), "text")
	assert.True(t, verdict.IsSafe)
	assert.InDelta(t, 0.2, verdict.ToxicScore, 1e-9)
}

func TestModerateTakesMaxScore(t *testing.T) {
	classifier := &stubClassifier{scores: []LabelScore{
		{Label: "toxic", Score: 0.55},
		{Label: "severe_toxic", Score: 0.9},
		{Label: "insult", Score: 0.6},
	}}
	engine := newTestEngine(nil, nil, classifier)

	verdict := engine.Moderate(context.Background(), "text")
	assert.False(t, verdict.IsSafe)
	assert.InDelta(t, 0.9, verdict.ToxicScore, 1e-9)
	assert.Equal(t, []string{"toxic:0.55", "severe_toxic:0.90", "insult:0.60"}, verdict.Issues)
}

func TestModerateFailOpenOnError(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("service down")}
	engine := newTestEngine(nil, nil, classifier)

	verdict := engine.Moderate(context.Background(), "text")
	assert.True(t, verdict.IsSafe)
	assert.Equal(t, 1.0, verdict.Confidence)
	assert.NotNil(t, verdict.Issues)
	assert.Empty(t, verdict.Issues)
}

func TestModerateClassifierAbsent(t *testing.T) {
	engine := newTestEngine(nil, nil, nil)

	verdict := engine.Moderate(context.Background(), "text")
	assert.True(t, verdict.IsSafe)
	assert.Equal(t, 0.0, verdict.ToxicScore)
}
