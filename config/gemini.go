package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultGeminiApiUrl = "https://generativelanguage.googleapis.com/v1beta"
	defaultAudioTimeout = 30 * time.Second
)

type GeminiConfig struct {
	ApiUrl  string
	ApiKey  string
	Timeout time.Duration
}

// GetGeminiConfig never fails on a missing GEMINI_API_KEY, the audio endpoint reports it per request.
func GetGeminiConfig() (*GeminiConfig, error) {
	apiUrl := os.Getenv("GEMINI_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGeminiApiUrl
	}
	timeout, err := durationFromEnv("AUDIO_TIMEOUT", defaultAudioTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gemini timeout: %w", err)
	}

	return &GeminiConfig{
		ApiUrl:  apiUrl,
		ApiKey:  os.Getenv(GeminiApiKeyEnv),
		Timeout: timeout,
	}, nil
}
