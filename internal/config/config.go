package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL" envDefault:"info"`

	LLMProvider     string `env:"LLM_PROVIDER" envDefault:"anthropic"`
	ModelName       string `env:"MODEL_NAME" envDefault:"claude-3-5-haiku-latest"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OllamaURL       string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"adventure.db"`
	RedisURL     string `env:"REDIS_URL"`

	FamilyFriendly bool `env:"FAMILY_FRIENDLY" envDefault:"false"`

	LogLevel slog.Level `env:"-"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
