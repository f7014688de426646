// Package config loads application configuration from environment variables.
// All variables use the PREPDECK_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Server Server
	Cache  Cache
	AI     AI
	Log    Log
}

// Server holds HTTP server settings.
type Server struct {
	Port int
	Host string
}

// Cache holds Redis connection settings. An empty URL disables expansion
// caching entirely.
type Cache struct {
	URL string
}

// AI holds configuration for the AI providers.
type AI struct {
	Groq      Groq
	OpenAI    OpenAI
	Ollama    Ollama
	AllowMock bool // serve canned responses when no provider is configured
}

// Groq holds Groq provider settings (the primary provider).
type Groq struct {
	APIKey string
	Model  string
}

// OpenAI holds OpenAI provider settings.
type OpenAI struct {
	APIKey string
}

// Ollama holds self-hosted Ollama settings.
type Ollama struct {
	Enabled bool
	URL     string
}

// Log holds logging settings.
type Log struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with PREPDECK_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port: envInt("PREPDECK_SERVER_PORT", 8080),
			Host: envStr("PREPDECK_SERVER_HOST", "0.0.0.0"),
		},
		Cache: Cache{
			URL: envStr("PREPDECK_CACHE_URL", ""),
		},
		AI: AI{
			Groq: Groq{
				APIKey: envStr("PREPDECK_AI_GROQ_API_KEY", ""),
				Model:  envStr("PREPDECK_AI_GROQ_MODEL", "llama-3.3-70b-versatile"),
			},
			OpenAI: OpenAI{
				APIKey: envStr("PREPDECK_AI_OPENAI_API_KEY", ""),
			},
			Ollama: Ollama{
				Enabled: envBool("PREPDECK_AI_OLLAMA_ENABLED", false),
				URL:     envStr("PREPDECK_AI_OLLAMA_URL", "http://localhost:11434"),
			},
			AllowMock: envBool("PREPDECK_AI_ALLOW_MOCK", false),
		},
		Log: Log{
			Level:  envStr("PREPDECK_LOG_LEVEL", "info"),
			Format: envStr("PREPDECK_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if !c.HasAIProvider() && !c.AI.AllowMock {
		return fmt.Errorf("at least one AI provider must be configured (or set PREPDECK_AI_ALLOW_MOCK=true)")
	}
	return nil
}

// HasAIProvider returns true if at least one real AI provider is configured.
func (c *Config) HasAIProvider() bool {
	return c.AI.Groq.APIKey != "" ||
		c.AI.OpenAI.APIKey != "" ||
		c.AI.Ollama.Enabled
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}
