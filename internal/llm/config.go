package llm

import (
	"fmt"
	"time"
)

// PlaceholderAPIKey is the dummy key shipped in example env files. A client
// configured with it is treated the same as one with no key at all.
const PlaceholderAPIKey = "sk-placeholder-key-change-this"

// Config contains configuration for the chat backend client.
type Config struct {
	// APIKey is the DeepSeek API key
	APIKey string

	// BaseURL is the API base URL
	// Default: https://api.deepseek.com/v1
	BaseURL string

	// DefaultModel is the model to use when not specified
	// Example: deepseek-chat
	DefaultModel string

	// Timeout is the HTTP request timeout
	// Default: 60 seconds
	Timeout time.Duration
}

// Available reports whether the backend can be called at all. A missing or
// placeholder key routes executions to the demo path instead.
func (c *Config) Available() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

// Validate checks that required config fields are set.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("APIKey is required")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("BaseURL is required")
	}

	if c.DefaultModel == "" {
		return fmt.Errorf("DefaultModel is required")
	}

	return nil
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.deepseek.com/v1"
	}

	if c.DefaultModel == "" {
		c.DefaultModel = "deepseek-chat"
	}

	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}
}
