package core

import (
	"os"

	"rtutor/internal/llm"
)

// Config holds the application configuration.
type Config struct {
	LogLevel        string // debug, info, warn, error
	DeepSeekAPIKey  string // empty or placeholder routes executions to demo mode
	DeepSeekAPIURL  string // chat-completions base URL
	DefaultModel    string // default model identifier
	PromptOverrides string // optional path to a YAML prompt override file
	HistoryDir      string // directory for persisted session histories
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	cfg := &Config{
		LogLevel:        logLevel,
		DeepSeekAPIKey:  os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekAPIURL:  getEnvOrDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/v1"),
		DefaultModel:    getEnvOrDefault("DEFAULT_MODEL", "deepseek-chat"),
		PromptOverrides: os.Getenv("RTUTOR_PROMPTS"),
		HistoryDir:      getEnvOrDefault("RTUTOR_HISTORY_DIR", ".rtutor/sessions"),
	}

	// A missing API key is not an error: executions fall back to the
	// deterministic demo path instead.
	return cfg, nil
}

// LLMConfig builds the backend client config from the app config.
func (c *Config) LLMConfig() *llm.Config {
	return &llm.Config{
		APIKey:       c.DeepSeekAPIKey,
		BaseURL:      c.DeepSeekAPIURL,
		DefaultModel: c.DefaultModel,
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
