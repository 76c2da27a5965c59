package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Mode string

const (
	ModeNative   Mode = "native"
	ModeRapidAPI Mode = "rapidapi"
)

type Config struct {
	APIKey      string
	Mode        Mode
	BaseURL     string
	HTTPTimeout time.Duration
	ServerPort  string
	ServerHost  string
	LogLevel    string
}

func Load() (*Config, error) {
	nativeKey := os.Getenv("ALPHAVANTAGE_API_KEY")
	rapidKey := os.Getenv("ALPHAVANTAGE_RAPIDAPI_KEY")

	mode := Mode(strings.ToLower(os.Getenv("ALPHAVANTAGE_MODE")))
	switch mode {
	case "":
		mode = ModeNative
		if nativeKey == "" && rapidKey != "" {
			mode = ModeRapidAPI
		}
	case ModeNative, ModeRapidAPI:
	default:
		return nil, fmt.Errorf("invalid ALPHAVANTAGE_MODE %q: must be %q or %q", mode, ModeNative, ModeRapidAPI)
	}

	apiKey := nativeKey
	if mode == ModeRapidAPI {
		apiKey = rapidKey
	}
	if apiKey == "" {
		if mode == ModeRapidAPI {
			return nil, fmt.Errorf("ALPHAVANTAGE_RAPIDAPI_KEY environment variable is required for rapidapi mode")
		}
		return nil, fmt.Errorf("ALPHAVANTAGE_API_KEY or ALPHAVANTAGE_RAPIDAPI_KEY environment variable is required")
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must be positive, got %s", timeout)
	}

	return &Config{
		APIKey:      apiKey,
		Mode:        mode,
		BaseURL:     os.Getenv("ALPHAVANTAGE_BASE_URL"),
		HTTPTimeout: timeout,
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8080"),
		ServerHost:  getEnvOrDefault("SERVER_HOST", "localhost"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
