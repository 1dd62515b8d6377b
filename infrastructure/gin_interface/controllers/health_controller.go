package controllers

import (
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
)

const healthStatus = "Contador de Histórias AI está no ar!"

type HealthController interface {
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type healthController struct{}

func NewHealthController() HealthController {
	return &healthController{}
}

func (h *healthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: healthStatus})
}

func (h *healthController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", h.Health)
}
