package contentgen

import (
	"fmt"
	"strings"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question, settings Settings) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Settings) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer is empty",
			Retryable: true,
		}
	}
	if q.Hint == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "hint is empty",
			Retryable: true,
		}
	}
	if q.Kind != KindMultipleChoice && q.Kind != KindShortAnswer && q.Kind != KindFillBlank {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown question type %q", q.Kind),
			Retryable: true,
		}
	}
	// A multiple-choice question with options must contain its answer.
	// Zero options is allowed here: the adapter substitutes the generic
	// placeholder set afterwards (degradation policy, not a rejection).
	if q.Kind == KindMultipleChoice && len(q.Options) > 0 && !containsFold(q.Options, q.CorrectAnswer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer does not match any option",
			Retryable: true,
		}
	}
	return nil
}

func containsFold(options []string, answer string) bool {
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(answer)) {
			return true
		}
	}
	return false
}
