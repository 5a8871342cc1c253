package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds the retry loop around transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// retrier re-runs a Generate call on transient faults with exponential
// backoff. A bad payload earns exactly one re-ask; truncation and
// context cancellation end the loop immediately.
type retrier struct {
	next  Provider
	cfg   RetryConfig
	sleep func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps a Provider with the retry loop.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg, sleep: sleepCtx}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	reasked := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		switch reason, _ := ReasonOf(err); reason {
		case ReasonTruncated:
			return nil, err
		case ReasonBadPayload:
			if reasked {
				return nil, err
			}
			reasked = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if err := r.sleep(ctx, r.delay(attempt, err)); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (r *retrier) ModelID() string { return r.next.ModelID() }

// delay picks the pause before the next attempt. A rate-limit fault
// with a server-provided pause wins over the backoff curve.
func (r *retrier) delay(attempt int, cause error) time.Duration {
	var f *Fault
	if errors.As(cause, &f) && f.Reason == ReasonRateLimited && f.RetryAfter > 0 {
		return f.RetryAfter
	}

	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter so synchronized clients fan out.
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(wait, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
