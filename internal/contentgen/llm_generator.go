package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/lamila/fundabuddy/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw provider response before validation.
type questionOutput struct {
	Text            string   `json:"text"`
	Type            string   `json:"type"`
	Options         []string `json:"options"`
	CorrectAnswer   string   `json:"correct_answer"`
	Hint            string   `json:"hint"`
	CulturalContext string   `json:"cultural_context"`
}

// Generate produces a single question for the given settings.
func (g *LLMGenerator) Generate(ctx context.Context, settings Settings) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(settings)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	q := &Question{
		ID:              uuid.New().String(),
		Text:            raw.Text,
		Kind:            Kind(raw.Type),
		Options:         raw.Options,
		CorrectAnswer:   raw.CorrectAnswer,
		Hint:            raw.Hint,
		CulturalContext: raw.CulturalContext,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, settings); verr != nil {
			return nil, verr
		}
	}

	// Degradation policy: a multiple-choice question with no options gets
	// the generic placeholder set so the UI always has selectable choices.
	if q.Kind == KindMultipleChoice && len(q.Options) == 0 {
		q.Options = append([]string(nil), PlaceholderOptions...)
	}

	return q, nil
}
