// Package config provides environment-backed configuration for the
// prompt generator. Values come from the process environment (optionally
// seeded from a .env file by the entrypoint); nothing here reads files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the resolved process configuration.
type Config struct {
	Port         int
	Env          string // "development" enables verbose error detail
	GeminiAPIKey string
	Model        string
	LLMTimeout   time.Duration
	JWTSecret    string // optional; enables session-scoped rate limiting
}

// Load resolves configuration from the environment. The API key is the
// only required value.
func Load() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return &Config{
		Port:         getEnvInt("PORT", 8080),
		Env:          getEnvString("APP_ENV", "production"),
		GeminiAPIKey: apiKey,
		Model:        getEnvString("LLM_MODEL", ""),
		LLMTimeout:   getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}, nil
}

// Development reports whether the process runs in a development-like mode
// where internal error detail may be returned to clients.
func (c *Config) Development() bool {
	return c.Env == "development"
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
