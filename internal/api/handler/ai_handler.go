package handler

import (
	"WanderLuxe/internal/api/dto"
	"WanderLuxe/internal/pkg/response"
	"WanderLuxe/internal/pkg/util"
	"WanderLuxe/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (s *AIHandler) GenerateDescription(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	description := s.aiService.GenerateDescription(c.Request.Context(), req.Content, req.Title)
	response.Success(c, dto.DescriptionDTO{Description: description})
}

func (s *AIHandler) SuggestTitle(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	title := s.aiService.SuggestTitle(c.Request.Context(), req.Content, req.Title)
	response.Success(c, dto.TitleDTO{Title: title})
}

func (s *AIHandler) GenerateTags(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	tags := s.aiService.GenerateTags(c.Request.Context(), req.Content, req.Title)
	response.Success(c, dto.TagsDTO{Tags: tags})
}

func (s *AIHandler) ImproveContent(c *gin.Context) {
	var req dto.ImproveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	critique := s.aiService.ImproveContent(c.Request.Context(), req.Content)
	response.Success(c, critique)
}

func (s *AIHandler) TravelInsights(c *gin.Context) {
	var req dto.TravelInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	insights := s.aiService.TravelInsights(c.Request.Context(), req.Destination, req.Content)
	response.Success(c, insights)
}

func (s *AIHandler) ModerateContent(c *gin.Context) {
	var req dto.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	verdict := s.aiService.ModerateContent(c.Request.Context(), req.Content)
	response.Success(c, verdict)
}

func (s *AIHandler) SimilarPosts(c *gin.Context) {
	var req dto.SimilarPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if req.PostID == 0 && req.Query == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	posts, err := s.aiService.SimilarPosts(c.Request.Context(), req.PostID, req.Query, req.TopK)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *AIHandler) TrendingPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	posts, err := s.aiService.TrendingPosts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *AIHandler) Health(c *gin.Context) {
	response.Success(c, s.aiService.Health())
}

func (s *AIHandler) WeatherInsights(c *gin.Context) {
	location := c.Param("location")
	if location == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	response.Success(c, s.aiService.WeatherInsights(location))
}
