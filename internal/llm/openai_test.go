package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openaiAgainst(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg), model: "gpt-4o-mini"}
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-funda",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index": 0,
				"message": map[string]any{
					"role":    "assistant",
					"content": `{"question":"A taxi fare is R14. How much do two trips cost?","answer":"R28"}`,
				},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{
				"prompt_tokens":     60,
				"completion_tokens": 30,
				"total_tokens":      90,
			},
		})
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are La-Mila, a friendly learning buddy for South African kids.",
		Messages:  []Message{{Role: RoleUser, Content: "Make one Grade 5 money question."}},
		MaxTokens: 512,
	})
	require.NoError(t, err)
	assert.Contains(t, string(resp.Content), "taxi")
	assert.Equal(t, Usage{InputTokens: 60, OutputTokens: 30, TotalTokens: 90}, resp.Usage)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOpenAIRateLimitMapsToTypedError(t *testing.T) {
	p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "tokens", "message": "slow down", "code": "rate_limit_exceeded"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var limited *ErrRateLimit
	require.ErrorAs(t, err, &limited)
}

func TestOpenAIServerErrorMapsToUnavailable(t *testing.T) {
	p := openaiAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "boom"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 64,
	})
	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
}

func TestOpenAIBaseURLOverride(t *testing.T) {
	// A custom BaseURL is how OpenRouter and other compatible services
	// are reached through this adapter.
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
}

func TestOpenAIMissingKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o-mini"})
	require.Error(t, err)
}
