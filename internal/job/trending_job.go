package job

import (
	"WanderLuxe/internal/pkg/consts"
	"WanderLuxe/internal/pkg/logger"
	"WanderLuxe/internal/pkg/redis"
	"WanderLuxe/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// TrendingJob 定时重算热度榜并回填缓存
type TrendingJob struct {
	aiSvc service.AIService
}

func NewTrendingJob(aiSvc service.AIService) *TrendingJob {
	return &TrendingJob{aiSvc: aiSvc}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if redis.Available() {
		lockUUID := uuid.NewString()
		ok, err := redis.TryLock(ctx, consts.TrendingRefreshLock, lockUUID, 30*time.Second, 1)
		if err != nil || !ok {
			log.InfoContext(ctx, "热度榜刷新锁已被占用，跳过本轮")
			return
		}
		defer redis.UnLock(ctx, consts.TrendingRefreshLock, lockUUID)
	}

	if err := s.aiSvc.RefreshTrending(ctx); err != nil {
		log.ErrorContext(ctx, "热度榜刷新失败", "err", err)
		return
	}
	log.InfoContext(ctx, "热度榜刷新成功")
}
