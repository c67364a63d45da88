package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Typed errors for the failure modes the quiz flow reacts to. The retry
// middleware keys its classification off these, and the generator falls
// back to a built-in question when one escapes the retry loop.

// ErrProviderUnavailable reports that the provider could not serve the
// request at all: network failure, 5xx, or an exhausted mock script.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "question provider unreachable"
	}
	return fmt.Sprintf("question provider unreachable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit reports a 429 from the provider. RetryAfter is zero when
// the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("provider rate limit hit (retry in %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports model output that is not valid JSON or does
// not satisfy the requested schema. Content carries the offending output
// for the debug log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("model output failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports output cut off at the token limit. Not
// retryable: the same request would be truncated again.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model output cut off at the token limit"
}
