package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultGroqApiUrl   = "https://api.groq.com/openai/v1"
	defaultStoryTimeout = 60 * time.Second
)

type GroqConfig struct {
	ApiUrl  string
	ApiKey  string
	Timeout time.Duration
}

// GetGroqConfig never fails on a missing GROQ_API_KEY, the story endpoint reports it per request.
func GetGroqConfig() (*GroqConfig, error) {
	apiUrl := os.Getenv("GROQ_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGroqApiUrl
	}
	timeout, err := durationFromEnv("STORY_TIMEOUT", defaultStoryTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse groq timeout: %w", err)
	}

	return &GroqConfig{
		ApiUrl:  apiUrl,
		ApiKey:  os.Getenv(GroqApiKeyEnv),
		Timeout: timeout,
	}, nil
}
