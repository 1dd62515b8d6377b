package adapters

import (
	"context"
	"errors"
	"github.com/Kubica-10/contador-historias-api/application/ports/outbound"
	"github.com/Kubica-10/contador-historias-api/config"
	"github.com/sashabaranov/go-openai"
	"net/http"
)

var errNoChoices = errors.New("chat completion returned no choices")

type groqChatCompletion struct {
	logger     outbound.LoggerPort
	groqConfig *config.GroqConfig
	httpClient *http.Client
}

// NewGroqChatCompletion talks to Groq's OpenAI-compatible API. The API key travels with
// each request, so a process started without GROQ_API_KEY can still build the adapter.
func NewGroqChatCompletion(groqConfig *config.GroqConfig, logger outbound.LoggerPort) outbound.ChatCompletionPort {
	return &groqChatCompletion{
		logger:     logger,
		groqConfig: groqConfig,
		httpClient: &http.Client{Timeout: groqConfig.Timeout},
	}
}

func (g *groqChatCompletion) Complete(ctx context.Context, req outbound.ChatCompletionRequest) (string, error) {
	clientConfig := openai.DefaultConfig(req.ApiKey)
	clientConfig.BaseURL = g.groqConfig.ApiUrl
	clientConfig.HTTPClient = g.httpClient
	client := openai.NewClientWithConfig(clientConfig)

	res, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	})
	if err != nil {
		g.logger.ErrorWithFields(err, "Chat completion request failed", map[string]any{
			"model": req.Model,
		})
		return "", err
	}
	if len(res.Choices) == 0 {
		g.logger.ErrorWithFields(errNoChoices, "Chat completion returned an empty response", map[string]any{
			"model": req.Model,
			"id":    res.ID,
		})
		return "", errNoChoices
	}

	g.logger.DebugWithFields("Chat completion finished", map[string]any{
		"model":             req.Model,
		"finish_reason":     res.Choices[0].FinishReason,
		"completion_tokens": res.Usage.CompletionTokens,
	})

	return res.Choices[0].Message.Content, nil
}
