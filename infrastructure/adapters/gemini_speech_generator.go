package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"net/http"
	"net/url"
)

const (
	SpeechModel    = "gemini-2.5-flash-preview-tts"
	SpeechVoice    = "Kore"
	speechModality = "AUDIO"
)

type geminiSpeechRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	Model            string                 `json:"model"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string           `json:"responseModalities"`
	SpeechConfig       geminiSpeechConfig `json:"speechConfig"`
}

type geminiSpeechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType *string `json:"mimeType,omitempty"`
	Data     *string `json:"data,omitempty"`
}

type geminiSpeechResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

// payload walks candidates[0].content.parts[0].inlineData.
func (r *geminiSpeechResponse) payload() mo.Result[domain.SpeechPayload] {
	if len(r.Candidates) == 0 {
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Field: "candidates"})
	}
	content := r.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Field: "candidates[0].content.parts"})
	}
	inlineData := content.Parts[0].InlineData
	if inlineData == nil {
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Field: "inlineData"})
	}
	data := lo.FromPtr(inlineData.Data)
	if data == "" {
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Field: "inlineData.data"})
	}
	mimeType := lo.FromPtr(inlineData.MimeType)
	if mimeType == "" {
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Field: "inlineData.mimeType"})
	}

	return mo.Ok(domain.SpeechPayload{Data: data, MimeType: mimeType})
}

type geminiSpeechGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiSpeechGenerator(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.SpeechGeneratorPort {
	return &geminiSpeechGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		geminiConfig:   geminiConfig,
	}
}

func (g *geminiSpeechGenerator) Generate(ctx context.Context, req outbound.GenerateSpeechRequest) mo.Result[domain.SpeechPayload] {
	httpReq, err := g.getRequest(ctx, req)
	if err != nil {
		return mo.Err[domain.SpeechPayload](err)
	}

	rawRes, err := g.FetchContent(httpReq).Get()
	if err != nil {
		return mo.Err[domain.SpeechPayload](err)
	}

	var speechRes geminiSpeechResponse
	if err := json.Unmarshal(rawRes, &speechRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the speech response")
		return mo.Err[domain.SpeechPayload](&domain.MalformedResponseError{Err: err})
	}

	res := speechRes.payload()
	if res.IsError() {
		g.logger.Error(res.Error(), "Speech response carries no audio")
	}
	return res
}

func (g *geminiSpeechGenerator) speechURL(apiKey string) string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.geminiConfig.ApiUrl, SpeechModel, url.QueryEscape(apiKey))
}

func (g *geminiSpeechGenerator) getRequest(ctx context.Context, req outbound.GenerateSpeechRequest) (*http.Request, error) {
	reqBody := geminiSpeechRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			ResponseModalities: []string{speechModality},
		},
		Model: SpeechModel,
	}
	reqBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = SpeechVoice

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body for the speech API")
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.speechURL(req.ApiKey), bytes.NewBuffer(jsonPayload))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = g.geminiConfig.ApiUrl
		}
		err = fmt.Errorf("invalid speech API URL %q: %w", g.geminiConfig.ApiUrl, err)
		g.logger.Error(err, "Failed to create the HTTP POST request")
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
