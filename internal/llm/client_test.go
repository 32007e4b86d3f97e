package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		APIKey:       "sk-test-key",
		BaseURL:      server.URL,
		DefaultModel: "deepseek-chat",
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func TestClient_Complete_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "x is a numeric vector"}}],
			"usage": {"total_tokens": 42}
		}`))
	})

	completion, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "You are an R tutor."},
		{Role: "user", Content: "explain x <- 1:10"},
	}, Options{Temperature: 0.7})

	require.NoError(t, err)
	assert.Equal(t, "x is a numeric vector", completion.Content)
	assert.Equal(t, 42, completion.TotalTokens)
}

func TestClient_Complete_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`rate limited`))
	})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, Options{})

	require.Error(t, err)
	llmErr, ok := err.(*LLMError)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeAPI, llmErr.Type)
	assert.Equal(t, http.StatusTooManyRequests, llmErr.Code)
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, Options{})

	require.Error(t, err)
	llmErr, ok := err.(*LLMError)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeAPI, llmErr.Type)
}

func TestClient_Complete_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, Options{})

	require.Error(t, err)
	llmErr, ok := err.(*LLMError)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeParse, llmErr.Type)
}

func TestClient_Complete_NetworkError(t *testing.T) {
	client, err := NewClient(&Config{
		APIKey:       "sk-test-key",
		BaseURL:      "http://127.0.0.1:1", // nothing listens here
		DefaultModel: "deepseek-chat",
		Timeout:      time.Second,
	})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}}, Options{})

	require.Error(t, err)
	llmErr, ok := err.(*LLMError)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNetwork, llmErr.Type)
}

func TestConfig_Available(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"real key", "sk-real-key", true},
		{"empty key", "", false},
		{"placeholder key", PlaceholderAPIKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIKey: tt.apiKey}
			assert.Equal(t, tt.want, cfg.Available())
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	cfg := &Config{APIKey: "sk-test"}
	cfg.SetDefaults()

	assert.Equal(t, "https://api.deepseek.com/v1", cfg.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.DefaultModel)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APIKey")
}
