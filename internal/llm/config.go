package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes the question provider. It is built
// from FUNDA_* environment variables, or discovered from the standard
// provider key variables when none are set.
type Config struct {
	// Provider: "gemini" (default), "anthropic", "openai", "openrouter",
	// or "mock" for tests.
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one question generation including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks cheap, fast models everywhere: question payloads
// are tiny and a child is watching the loading screen.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// env overwrites dst when the variable is set.
func env(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv reads the FUNDA_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	env(&cfg.Provider, "FUNDA_LLM_PROVIDER")
	env(&cfg.Gemini.APIKey, "FUNDA_GEMINI_API_KEY")
	env(&cfg.Gemini.Model, "FUNDA_GEMINI_MODEL")
	env(&cfg.Anthropic.APIKey, "FUNDA_ANTHROPIC_API_KEY")
	env(&cfg.Anthropic.Model, "FUNDA_ANTHROPIC_MODEL")
	env(&cfg.OpenAI.APIKey, "FUNDA_OPENAI_API_KEY")
	env(&cfg.OpenAI.Model, "FUNDA_OPENAI_MODEL")
	env(&cfg.OpenAI.BaseURL, "FUNDA_OPENAI_BASE_URL")
	env(&cfg.OpenRouter.APIKey, "FUNDA_OPENROUTER_API_KEY")
	env(&cfg.OpenRouter.Model, "FUNDA_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the providers' own key variables so that a
// machine with a bare GEMINI_API_KEY works with zero funda-specific
// setup. Probe order is the preference order: Gemini first (the
// original app ran on it), then OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		key      func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		if k := os.Getenv(p.envVar); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			*p.key(&cfg) = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks the selected provider has the key it needs.
func (c Config) Validate() error {
	missing := func(v string) error {
		return fmt.Errorf("%s is required for the %s provider", v, c.Provider)
	}
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return missing("FUNDA_GEMINI_API_KEY")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return missing("FUNDA_ANTHROPIC_API_KEY")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return missing("FUNDA_OPENAI_API_KEY")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return missing("FUNDA_OPENROUTER_API_KEY")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
