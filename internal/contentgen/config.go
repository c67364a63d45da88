package contentgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. The first failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the provider response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:   512,
		Temperature: 0.7,
	}
}
