package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with what a request is for ("question-gen",
// "provider-check"). The tag ends up in the debug log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose tag, or "unknown" for untagged contexts.
func PurposeFrom(ctx context.Context) string {
	p, _ := ctx.Value(purposeKey{}).(string)
	if p == "" {
		return "unknown"
	}
	return p
}
