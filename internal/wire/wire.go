package wire

import (
	"WanderLuxe/internal/api"
	"WanderLuxe/internal/api/config"
	"WanderLuxe/internal/api/handler"
	"WanderLuxe/internal/job"
	"WanderLuxe/internal/pkg/cron"
	"WanderLuxe/internal/pkg/llm"
	"WanderLuxe/internal/repository"
	"WanderLuxe/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, engine *llm.Engine, cfg *config.Config) (*ApplicationContainer, error) {
	postRepo := repository.NewPostRepository(db)

	aiService := service.NewAIService(engine, postRepo, cfg.Trending)

	handlers := &api.HandlersGroup{
		AIHandler: handler.NewAIHandler(aiService),
	}

	router := api.SetupRouter(handlers)

	trendingJob := job.NewTrendingJob(aiService)
	cronMgr := cron.NewCronManager(trendingJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
