package llm

// ModelCost is USD per million tokens for one model. `funda llm check`
// uses it to print a rough per-question figure, so the table only covers
// the models the config offers by default.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a request with the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns pricing for a model ID, or nil when the model is
// not in the table (OpenRouter pass-through IDs, custom models).
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// Prices from the providers' published rate cards, checked 2026-02.
var modelCosts = map[string]ModelCost{
	"claude-sonnet-4-20250514":  {3, 15},
	"claude-haiku-4-5-20251001": {1, 5},

	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},

	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.0-pro":   {1.25, 10},
}
