package contentgen

import "context"

// Generator produces quiz questions for a settings configuration.
type Generator interface {
	// Generate produces a single question for the given settings.
	// Returns a validated Question or an error. At most one call is
	// in flight at a time; the session controller guards re-entry.
	Generate(ctx context.Context, settings Settings) (*Question, error)
}
