package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier re-issues failed requests with exponential backoff. A slow
// question generator is tolerable behind the loading mascot; a flaky one
// is not, so transient failures get a few attempts before the session
// controller substitutes the fallback question.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a provider in the retry middleware.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1 // schema failures get a single re-roll

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retryable, wait := r.classify(err, attempt, &invalidBudget)
		if !retryable || attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

// classify decides whether err warrants another attempt and how long to
// wait before it.
func (r *retrier) classify(err error, attempt int, invalidBudget *int) (bool, time.Duration) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, 0
	}

	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		// Token-limit truncation repeats deterministically.
		return false, 0
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidBudget == 0 {
			return false, 0
		}
		*invalidBudget--
		return true, r.wait(attempt)
	}

	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return true, limited.RetryAfter
	}

	// Everything else (429 without a hint, 5xx, network) is transient.
	return true, r.wait(attempt)
}

// wait is InitialWait doubled (or whatever Multiplier says) per attempt,
// capped at MaxWait, with ±20% jitter.
func (r *retrier) wait(attempt int) time.Duration {
	d := float64(r.cfg.InitialWait)
	for i := 0; i < attempt; i++ {
		d *= r.cfg.Multiplier
	}
	if max := float64(r.cfg.MaxWait); d > max {
		d = max
	}
	d *= 1 + 0.2*(2*rand.Float64()-1)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
