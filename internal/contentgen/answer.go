package contentgen

import "strings"

// Evaluate compares the learner's input against the correct answer.
//
// Both sides are trimmed of surrounding whitespace and compared
// case-insensitively. No other normalization is applied: "10" does not
// match "10.0", and punctuation is significant. This is a deliberate
// simplicity trade-off — the provider is prompted to keep answers clean
// rather than the evaluator guessing at numeric equivalence.
func Evaluate(learnerAnswer string, q *Question) bool {
	if q == nil {
		return false
	}
	return strings.EqualFold(
		strings.TrimSpace(learnerAnswer),
		strings.TrimSpace(q.CorrectAnswer),
	)
}
