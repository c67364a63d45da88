package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterModelPassThrough(t *testing.T) {
	// OpenRouter model IDs carry a vendor prefix and must not be run
	// through the OpenAI short-name table.
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey: "sk-or-test",
		Model:  "google/gemini-2.0-flash-exp",
	})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

func TestOpenRouterMissingKey(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"})
	require.Error(t, err)
}

func TestOpenRouterCustomBaseURL(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-3-haiku",
		BaseURL: "https://gateway.example.net/v1",
	})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID())
}
