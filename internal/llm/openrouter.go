package llm

import "fmt"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is the OpenAI adapter pointed at the OpenRouter
// endpoint. Model IDs pass through verbatim ("google/gemini-2.0-flash-exp"
// and friends); OpenRouter does its own routing.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: missing API key")
	}

	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: base,
	})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
