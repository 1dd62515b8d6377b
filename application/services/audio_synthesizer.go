package services

import (
	"context"
	"errors"
	"github.com/Kubica-10/contador-historias-api/application/ports/inbound"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"net/http"
	"strings"
)

const speechPromptPrefix = "Say in a gentle children's storyteller voice: "

type audioSynthesizer struct {
	logger          outbound.LoggerPort
	credentials     *config.Credentials
	speechGenerator outbound.SpeechGeneratorPort
	workerPool      outbound.TaskDispatcher
}

func NewAudioSynthesizer(logger outbound.LoggerPort, credentials *config.Credentials,
	speechGenerator outbound.SpeechGeneratorPort, workerPool outbound.TaskDispatcher) inbound.AudioSynthesizerPort {
	return &audioSynthesizer{
		logger:          logger,
		credentials:     credentials,
		speechGenerator: speechGenerator,
		workerPool:      workerPool,
	}
}

func (a *audioSynthesizer) Synthesize(ctx context.Context, req domain.AudioRequest) (domain.AudioResponse, error) {
	text := strings.TrimSpace(req.TextToSpeak)
	if text == "" {
		return domain.AudioResponse{}, domain.NewInvalidInputError("text_to_speak must not be empty")
	}

	apiKey, err := a.credentials.RequireSpeechKey()
	if err != nil {
		a.logger.Error(err, "Audio synthesis is not configured")
		return domain.AudioResponse{}, err
	}

	fields := map[string]any{
		"text": lo.Ellipsis(text, logInputLength),
	}
	a.logger.InfoWithFields("Synthesizing audio", fields)

	res := runOnPool(ctx, a.workerPool, func(ctx context.Context) mo.Result[domain.SpeechPayload] {
		return a.speechGenerator.Generate(ctx, outbound.GenerateSpeechRequest{
			ApiKey: apiKey,
			Prompt: speechPromptPrefix + text,
		})
	})

	payload, err := res.Get()
	if err != nil {
		domainErr := translateSpeechError(err)
		fields["kind"] = domainErr.Kind
		a.logger.ErrorWithFields(err, "Failed to synthesize audio", fields)
		return domain.AudioResponse{}, domainErr
	}

	return domain.AudioResponse{
		AudioBase64: payload.Data,
		MimeType:    payload.MimeType,
	}, nil
}

func translateSpeechError(err error) *domain.Error {
	var rejected *domain.UpstreamRejectedError
	var transport *domain.TransportFailureError
	var malformed *domain.MalformedResponseError
	var domainErr *domain.Error

	switch {
	case errors.As(err, &domainErr):
		return domainErr
	case errors.As(err, &rejected):
		if rejected.Status == http.StatusForbidden {
			return domain.NewCredentialRejectedError("Gemini", err)
		}
		return domain.NewUpstreamStatusError(err)
	case errors.As(err, &transport):
		return domain.NewTransportFailureError(transport.Cause)
	case errors.As(err, &malformed):
		return domain.NewMalformedUpstreamResponseError(err)
	default:
		return domain.NewUnexpectedFailureError("failed to synthesize audio", err)
	}
}
