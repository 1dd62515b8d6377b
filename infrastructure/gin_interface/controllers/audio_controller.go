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

type AudioController interface {
	GenerateAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type audioController struct {
	logger           outbound.LoggerPort
	audioSynthesizer inbound.AudioSynthesizerPort
}

func NewAudioController(logger outbound.LoggerPort, audioSynthesizer inbound.AudioSynthesizerPort) AudioController {
	return &audioController{
		logger:           logger,
		audioSynthesizer: audioSynthesizer,
	}
}

func (a *audioController) GenerateAudio(c *gin.Context) {
	var audioRequest dto.AudioRequest
	if err := c.ShouldBindJSON(&audioRequest); err != nil {
		a.logger.Warn(fmt.Sprintf("Rejected audio request: %v", err))
		abortWithError(c, domain.NewInvalidInputError(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	res, err := a.audioSynthesizer.Synthesize(c.Request.Context(), domain.AudioRequest{TextToSpeak: audioRequest.TextToSpeak})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AudioResponse{
		AudioBase64: res.AudioBase64,
		MimeType:    res.MimeType,
	})
}

func (a *audioController) RegisterRoutes(g *gin.Engine) {
	g.POST("/gerar_audio", a.GenerateAudio)
}
