package service

import (
	"WanderLuxe/internal/api/config"
	"WanderLuxe/internal/model"
	"WanderLuxe/internal/pkg/consts"
	"WanderLuxe/internal/pkg/llm"
	"WanderLuxe/internal/pkg/redis"
	"WanderLuxe/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type AIService interface {
	GenerateDescription(ctx context.Context, content, title string) string
	SuggestTitle(ctx context.Context, content, title string) string
	GenerateTags(ctx context.Context, content, title string) []string
	ImproveContent(ctx context.Context, content string) *llm.ContentCritique
	TravelInsights(ctx context.Context, destination, content string) *llm.DestinationInsights
	ModerateContent(ctx context.Context, content string) *llm.ModerationVerdict
	SimilarPosts(ctx context.Context, postID uint64, query string, k int) ([]*llm.PostRecord, error)
	TrendingPosts(ctx context.Context, limit int) ([]*llm.PostRecord, error)
	RefreshTrending(ctx context.Context) error
	Health() llm.EngineHealth
	WeatherInsights(location string) *llm.WeatherInsight
}

type aiServiceImpl struct {
	engine     *llm.Engine
	postRepo   repository.PostRepo
	corpusSize int
	rankLimit  int
	cacheTTL   time.Duration
}

func NewAIService(engine *llm.Engine, postRepo repository.PostRepo, cfg config.TrendingConfig) AIService {
	corpusSize := cfg.CorpusSize
	if corpusSize <= 0 {
		corpusSize = consts.DefaultCorpusSize
	}
	rankLimit := cfg.Limit
	if rankLimit <= 0 {
		rankLimit = 20
	}
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Minute
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &aiServiceImpl{
		engine:     engine,
		postRepo:   postRepo,
		corpusSize: corpusSize,
		rankLimit:  rankLimit,
		cacheTTL:   cacheTTL,
	}
}

func (s *aiServiceImpl) GenerateDescription(ctx context.Context, content, title string) string {
	return s.engine.Describe(ctx, content, title)
}

func (s *aiServiceImpl) SuggestTitle(ctx context.Context, content, title string) string {
	return s.engine.SuggestTitle(ctx, content, title)
}

func (s *aiServiceImpl) GenerateTags(ctx context.Context, content, title string) []string {
	return s.engine.GenerateTags(ctx, content, title)
}

func (s *aiServiceImpl) ImproveContent(ctx context.Context, content string) *llm.ContentCritique {
	return s.engine.CritiqueContent(ctx, content)
}

func (s *aiServiceImpl) TravelInsights(ctx context.Context, destination, content string) *llm.DestinationInsights {
	return s.engine.DestinationInsights(ctx, destination, content)
}

func (s *aiServiceImpl) ModerateContent(ctx context.Context, content string) *llm.ModerationVerdict {
	return s.engine.Moderate(ctx, content)
}

// SimilarPosts 相似帖子。postID 非 0 时以该帖子的拼接文本作为查询，
// 并从候选集中剔除其本身
func (s *aiServiceImpl) SimilarPosts(ctx context.Context, postID uint64, query string, k int) ([]*llm.PostRecord, error) {
	if k <= 0 {
		k = consts.DefaultSimilarK
	}

	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	candidates := corpus
	if postID != 0 {
		post, err := s.postRepo.GetPost(ctx, postID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPostNotFound
			}
			return nil, err
		}
		target := toRecord(post)
		query = target.CompositeText()

		candidates = make([]*llm.PostRecord, 0, len(corpus))
		for _, record := range corpus {
			if record.ID != postID {
				candidates = append(candidates, record)
			}
		}
	}

	if query == "" {
		return nil, ErrParamInvalid
	}

	return s.engine.FindSimilar(ctx, query, candidates, k), nil
}

// TrendingPosts 热度榜，优先读 Redis 缓存，未命中时现算并回填
func (s *aiServiceImpl) TrendingPosts(ctx context.Context, limit int) ([]*llm.PostRecord, error) {
	if limit <= 0 {
		limit = consts.DefaultTrendingLimit
	}
	if limit > s.rankLimit {
		limit = s.rankLimit
	}

	if redis.Available() {
		cached, err := redis.GetValue(ctx, consts.TrendingPostsKey)
		if err != nil {
			log.WarnContext(ctx, "读取热度榜缓存失败", "err", err)
		} else if cached != "" {
			var ranked []*llm.PostRecord
			if err = json.Unmarshal([]byte(cached), &ranked); err == nil {
				if limit > len(ranked) {
					limit = len(ranked)
				}
				return ranked[:limit], nil
			}
			log.WarnContext(ctx, "热度榜缓存解析失败", "err", err)
		}
	}

	ranked, err := s.buildTrending(ctx)
	if err != nil {
		return nil, err
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit], nil
}

// RefreshTrending 重算热度榜并写缓存，由定时任务调用
func (s *aiServiceImpl) RefreshTrending(ctx context.Context) error {
	ranked, err := s.buildTrending(ctx)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "热度榜重算完成", "count", len(ranked))
	return nil
}

func (s *aiServiceImpl) Health() llm.EngineHealth {
	return s.engine.Health()
}

func (s *aiServiceImpl) WeatherInsights(location string) *llm.WeatherInsight {
	return llm.WeatherInsights(location)
}

// buildTrending 现算热度榜，Redis 可用时回填缓存
func (s *aiServiceImpl) buildTrending(ctx context.Context) ([]*llm.PostRecord, error) {
	corpus, err := s.loadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	ranked := llm.RankTrending(corpus, s.rankLimit)

	if redis.Available() {
		payload, err := json.Marshal(ranked)
		if err == nil {
			if err = redis.SetWithExpiration(ctx, consts.TrendingPostsKey, payload, s.cacheTTL); err != nil {
				log.WarnContext(ctx, "写入热度榜缓存失败", "err", err)
			}
		}
	}

	return ranked, nil
}

func (s *aiServiceImpl) loadCorpus(ctx context.Context) ([]*llm.PostRecord, error) {
	posts, err := s.postRepo.GetPublishedPage(ctx, 1, s.corpusSize)
	if err != nil {
		return nil, err
	}

	records := make([]*llm.PostRecord, 0, len(posts))
	for _, post := range posts {
		records = append(records, toRecord(post))
	}
	return records, nil
}

func toRecord(post *model.Post) *llm.PostRecord {
	record := &llm.PostRecord{}
	_ = copier.Copy(record, post)
	return record
}
