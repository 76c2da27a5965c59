package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ALPHAVANTAGE_API_KEY",
		"ALPHAVANTAGE_RAPIDAPI_KEY",
		"ALPHAVANTAGE_MODE",
		"ALPHAVANTAGE_BASE_URL",
		"HTTP_TIMEOUT",
		"SERVER_PORT",
		"SERVER_HOST",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "native-key", cfg.APIKey)
	assert.Equal(t, ModeNative, cfg.Mode)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")
	t.Setenv("ALPHAVANTAGE_BASE_URL", "http://localhost:9999")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_RapidAPIKeyOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_RAPIDAPI_KEY", "rapid-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeRapidAPI, cfg.Mode)
	assert.Equal(t, "rapid-key", cfg.APIKey)
}

func TestLoad_ExplicitRapidAPIMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")
	t.Setenv("ALPHAVANTAGE_RAPIDAPI_KEY", "rapid-key")
	t.Setenv("ALPHAVANTAGE_MODE", "RapidAPI")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ModeRapidAPI, cfg.Mode)
	assert.Equal(t, "rapid-key", cfg.APIKey)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ALPHAVANTAGE_API_KEY")
}

func TestLoad_RapidAPIModeWithoutKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")
	t.Setenv("ALPHAVANTAGE_MODE", "rapidapi")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ALPHAVANTAGE_RAPIDAPI_KEY")
}

func TestLoad_InvalidMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")
	t.Setenv("ALPHAVANTAGE_MODE", "grpc")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ALPHAVANTAGE_MODE")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALPHAVANTAGE_API_KEY", "native-key")

	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")

	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err = Load()
	assert.Error(t, err)
}
