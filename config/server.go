package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort                = 8000
	defaultHost                = "0.0.0.0"
	defaultUpstreamConcurrency = 64
)

type ServerConfig struct {
	Host                string
	Port                int
	UpstreamConcurrency int
	LogLevel            string
}

func GetServerConfig() (*ServerConfig, error) {
	host := os.Getenv("HOST")
	if host == "" {
		host = defaultHost
	}
	port, err := intFromEnv("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	if err := ValidatePort(port); err != nil {
		return nil, err
	}
	concurrency, err := intFromEnv("UPSTREAM_CONCURRENCY", defaultUpstreamConcurrency)
	if err != nil {
		return nil, err
	}
	if concurrency <= 0 {
		return nil, fmt.Errorf("UPSTREAM_CONCURRENCY must be positive, got %d", concurrency)
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &ServerConfig{
		Host:                host,
		Port:                port,
		UpstreamConcurrency: concurrency,
		LogLevel:            logLevel,
	}, nil
}

// ValidatePort rejects ports outside 1-65535, including 0 which would bind a random port.
func ValidatePort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}

func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return val, nil
}

func durationFromEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, val)
	}
	return val, nil
}
