package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Message is one chat message sent to or received from the backend.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options are per-call generation parameters.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// Completion is the result of one backend call.
type Completion struct {
	Content     string
	TotalTokens int
}

// Client is the chat client for the DeepSeek-compatible completions API.
type Client struct {
	config *Config
	http   *http.Client
}

// NewClient creates a new chat backend client.
func NewClient(config *Config) (*Client, error) {
	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// Available reports whether the client holds a usable credential.
func (c *Client) Available() bool {
	return c.config.Available()
}

// chatRequest is an OpenAI-compatible completions request.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// chatResponse is an OpenAI-compatible completions response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Complete issues exactly one chat-completions call and returns the generated
// text plus token usage.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) (*Completion, error) {
	model := opts.Model
	if model == "" {
		model = c.config.DefaultModel
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			slog.Error("DeepSeek request timed out",
				"duration", duration,
			)
			return nil, NewTimeoutError(err)
		}
		slog.Error("DeepSeek HTTP request failed",
			"error", err.Error(),
			"duration", duration,
		)
		return nil, NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("Failed to close response body", "error", err)
		}
	}()

	slog.Info("DeepSeek HTTP request completed",
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			slog.Warn("Failed to read error response body", "error", err)
			return nil, NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return nil, NewAPIError(resp.StatusCode, errBody.String())
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, NewParseError("invalid JSON body", err)
	}

	if chatResp.Error != nil {
		return nil, NewAPIError(0, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, NewAPIError(0, "no choices in response")
	}

	return &Completion{
		Content:     chatResp.Choices[0].Message.Content,
		TotalTokens: chatResp.Usage.TotalTokens,
	}, nil
}
