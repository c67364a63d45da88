package contentgen

import "github.com/lamila/fundabuddy/internal/llm"

// QuestionSchema defines the JSON schema for provider question responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single localized practice question with answer and hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "The question text. Use simple English FAL.",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "short-answer", "fill-blank"},
				"description": "How the learner answers this question",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "3-4 options if multiple choice. Empty if not.",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple choice: the text of the correct option.",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "Step-by-step guidance without revealing the answer. Simple language.",
			},
			"cultural_context": map[string]any{
				"type":        "string",
				"description": "Short tag of the SA context used (e.g. 'Tuckshop Math')",
			},
		},
		"required":             []any{"text", "type", "correct_answer", "hint"},
		"additionalProperties": false,
	},
}
