package config

import "github.com/Kubica-10/contador-historias-api/domain"

const (
	GroqApiKeyEnv   = "GROQ_API_KEY"
	GeminiApiKeyEnv = "GEMINI_API_KEY"
)

// Credentials holds the provider keys read at startup. Either may be empty.
type Credentials struct {
	ChatCompletionKey string
	SpeechKey         string
}

func NewCredentials(groqConfig *GroqConfig, geminiConfig *GeminiConfig) *Credentials {
	return &Credentials{
		ChatCompletionKey: groqConfig.ApiKey,
		SpeechKey:         geminiConfig.ApiKey,
	}
}

func (c *Credentials) RequireChatCompletionKey() (string, error) {
	if c.ChatCompletionKey == "" {
		return "", domain.NewConfigurationError(GroqApiKeyEnv)
	}
	return c.ChatCompletionKey, nil
}

func (c *Credentials) RequireSpeechKey() (string, error) {
	if c.SpeechKey == "" {
		return "", domain.NewConfigurationError(GeminiApiKeyEnv)
	}
	return c.SpeechKey, nil
}
