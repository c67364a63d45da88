package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiShortModelNames(t *testing.T) {
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiModels))
	assert.Equal(t, "gemini-2.0-pro", resolveModel("gemini-pro", geminiModels))
	// Full IDs pass through untouched.
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-2.0-flash", geminiModels))
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// A cut-down version of the question schema the generator sends.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":      map[string]any{"type": "string"},
			"correctAnswer": map[string]any{"type": "string"},
			"kind": map[string]any{
				"type": "string",
				"enum": []any{"multiple-choice", "short-answer", "fill-blank"},
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "correctAnswer"},
	}

	s := geminiSchema(def)

	require.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 4)
	assert.Equal(t, genai.TypeString, s.Properties["question"].Type)
	assert.Len(t, s.Properties["kind"].Enum, 3)
	assert.Equal(t, genai.TypeArray, s.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, s.Properties["options"].Items.Type)
	assert.ElementsMatch(t, []string{"question", "correctAnswer"}, s.Required)
}

func TestGeminiSchemaUnknownTypeFallsBackToString(t *testing.T) {
	s := geminiSchema(map[string]any{"type": "null"})
	assert.Equal(t, genai.TypeString, s.Type)
}

func TestGeminiMissingKey(t *testing.T) {
	_, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"})
	require.Error(t, err)
}
