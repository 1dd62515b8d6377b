package config

import "github.com/hashicorp/go-multierror"

type Config struct {
	Server      *ServerConfig
	Groq        *GroqConfig
	Gemini      *GeminiConfig
	Credentials *Credentials
}

// Load reads every config section and reports all parse failures at once.
func Load() (*Config, error) {
	var result *multierror.Error

	serverConfig, err := GetServerConfig()
	if err != nil {
		result = multierror.Append(result, err)
	}
	groqConfig, err := GetGroqConfig()
	if err != nil {
		result = multierror.Append(result, err)
	}
	geminiConfig, err := GetGeminiConfig()
	if err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Config{
		Server:      serverConfig,
		Groq:        groqConfig,
		Gemini:      geminiConfig,
		Credentials: NewCredentials(groqConfig, geminiConfig),
	}, nil
}
