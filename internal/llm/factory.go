package llm

import (
	"context"
	"fmt"
	"io"
	"os"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, debugSink())
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// resolveModel expands a short model name ("gemini-flash") to the full
// provider model ID. Names outside the table pass through unchanged so a
// full model ID works everywhere a short name does.
func resolveModel(name string, known map[string]string) string {
	if id, ok := known[name]; ok {
		return id
	}
	return name
}

// debugSink resolves the request log destination. Unset means no
// logging; "stderr" is special-cased, anything else is appended to as
// a file.
func debugSink() io.Writer {
	path := os.Getenv("FUNDA_LLM_DEBUG_LOG")
	switch path {
	case "":
		return nil
	case "stderr":
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open llm debug log %s: %v\n", path, err)
		return nil
	}
	return f
}
