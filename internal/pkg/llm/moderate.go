package llm

import (
	"context"
	"fmt"
	log "log/slog"
)

// ModerationVerdict 审核结论，每次调用现算，不落库
type ModerationVerdict struct {
	IsSafe     bool     `json:"is_safe"`
	Confidence float64  `json:"confidence"`
	Issues     []string `json:"issues"`
	ToxicScore float64  `json:"toxic_score"`
}

// 参与审核的标签集合，覆盖毒性、严重毒性、低俗、威胁、辱骂与身份仇恨
var setToxicLabel = map[string]bool{
	"toxic":         true,
	"severe_toxic":  true,
	"obscene":       true,
	"threat":        true,
	"insult":        true,
	"identity_hate": true,
}

// issueThreshold 标签得分超过该值才计入 issues，同时也是安全判定阈值
const issueThreshold = 0.5

// Moderate 聚合分类器输出为安全结论。分类器缺席或调用失败时放行
// （fail-open：审核能力缺席不阻断发布，这是沿用的策略选择）
func (s *Engine) Moderate(ctx context.Context, text string) *ModerationVerdict {
	if s.classifier == nil {
		return safeVerdict()
	}

	scores, err := s.classifier.Classify(ctx, text)
	if err != nil {
		log.ErrorContext(ctx, "内容审核-分类器请求失败，默认放行", "err", err)
		return safeVerdict()
	}

	toxicScore := 0.0
	issues := make([]string, 0)
	for _, item := range scores {
		if !setToxicLabel[item.Label] {
			continue
		}
		// 取最大值而非求和，单个强毒性标签即足够说明问题
		if item.Score > toxicScore {
			toxicScore = item.Score
		}
		if item.Score > issueThreshold {
			issues = append(issues, fmt.Sprintf("%s:%.2f", item.Label, item.Score))
		}
	}

	return &ModerationVerdict{
		IsSafe:     toxicScore < issueThreshold,
		Confidence: 1.0 - toxicScore,
		Issues:     issues,
		ToxicScore: toxicScore,
	}
}

func safeVerdict() *ModerationVerdict {
	return &ModerationVerdict{
		IsSafe:     true,
		Confidence: 1.0,
		Issues:     make([]string, 0),
		ToxicScore: 0,
	}
}
