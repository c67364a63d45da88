// Package llm abstracts the question-generating model behind a small
// Provider interface. Gemini is the default backend; Anthropic, OpenAI
// and OpenRouter plug in behind the same interface, and middleware adds
// retries and an optional request log.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model endpoint.
type Provider interface {
	// Generate runs a single completion. When req.Schema is set the
	// provider asks for structured output and the returned Content is
	// schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the resolved model identifier, for logs and pricing.
	ModelID() string
}

// Request is a provider-neutral prompt. The content generator builds
// one per question.
type Request struct {
	// System frames the model's role (the La-Mila tutor persona).
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so in practice this holds one user message.
	Messages []Message

	// Schema, when set, constrains the output shape via the provider's
	// structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name keys the compiled-schema cache and is sent to providers that
	// want a schema name. Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	// Content is the model output. Validated JSON when the request
	// carried a schema, raw text otherwise.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
