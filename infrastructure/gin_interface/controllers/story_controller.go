package controllers

import (
	"fmt"
	"github.com/Kubica-10/contador-historias-api/application/ports/inbound"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
)

type StoryController interface {
	GenerateStory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger         outbound.LoggerPort
	storyGenerator inbound.StoryGeneratorPort
}

func NewStoryController(logger outbound.LoggerPort, storyGenerator inbound.StoryGeneratorPort) StoryController {
	return &storyController{
		logger:         logger,
		storyGenerator: storyGenerator,
	}
}

func (s *storyController) GenerateStory(c *gin.Context) {
	var storyRequest dto.StoryRequest
	if err := c.ShouldBindJSON(&storyRequest); err != nil {
		s.logger.Warn(fmt.Sprintf("Rejected story request: %v", err))
		abortWithError(c, domain.NewInvalidInputError(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	res, err := s.storyGenerator.Generate(c.Request.Context(), domain.StoryRequest{Theme: storyRequest.Query})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StoryResponse{StoryText: res.StoryText})
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/gerar_historia", s.GenerateStory)
}
