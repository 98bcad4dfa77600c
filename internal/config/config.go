// Package config collects the environment-driven settings read at startup.
package config

import (
	"os"
	"strings"
)

type Config struct {
	Port string
	Env  string

	// Provider selects the generation backend: gemini (default),
	// anthropic, or mock.
	Provider        string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string

	// DatasetDir holds the static CSV reference tables.
	DatasetDir string

	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		Env:             getenv("APP_ENV", "development"),
		Provider:        getenv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  os.Getenv("ANTHROPIC_MODEL"),
		DatasetDir:      getenv("DATASET_DIR", "data"),
		AllowedOrigins:  []string{"*"},
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	if os.Getenv("MOCK_LLM") == "true" {
		cfg.Provider = "mock"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
