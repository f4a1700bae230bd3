package api

import (
	"WanderLuxe/internal/api/middleware"
	"WanderLuxe/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		aiGroup := apiGroup.Group("/ai")
		{
			aiGroup.POST("/generate-description", group.AIHandler.GenerateDescription)
			aiGroup.POST("/suggest-title", group.AIHandler.SuggestTitle)
			aiGroup.POST("/generate-tags", group.AIHandler.GenerateTags)
			aiGroup.POST("/improve-content", group.AIHandler.ImproveContent)
			aiGroup.POST("/travel-insights", group.AIHandler.TravelInsights)
			aiGroup.POST("/moderate-content", group.AIHandler.ModerateContent)
			aiGroup.POST("/similar-posts", group.AIHandler.SimilarPosts)

			aiGroup.GET("/trending-posts", group.AIHandler.TrendingPosts)
			aiGroup.GET("/weather-insights/:location", group.AIHandler.WeatherInsights)
			aiGroup.GET("/health", group.AIHandler.Health)
		}
	}

	return r
}
