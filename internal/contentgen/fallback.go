package contentgen

// FallbackID is the ID of the question substituted when generation fails.
const FallbackID = "fallback"

// Fallback returns the fixed question shown when the provider call fails.
// Its only purpose is to give the learner one actionable choice to retry;
// answering it flows through the normal evaluate/ledger path.
func Fallback() *Question {
	return &Question{
		ID:              FallbackID,
		Text:            "We had a little hiccup connecting to the brain center. Ready to try again?",
		Kind:            KindMultipleChoice,
		Options:         []string{"Ready!", "Wait"},
		CorrectAnswer:   "Ready!",
		Hint:            "Just pick Ready to reload!",
		CulturalContext: "System Check",
	}
}

// PlaceholderOptions is the generic option set substituted when the
// provider returns a multiple-choice question with no options. The UI
// always has selectable choices; the question is degraded, not dropped.
var PlaceholderOptions = []string{"Option 1", "Option 2", "Option 3", "Option 4"}
