package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// scripted fails with each error in errs in turn, then succeeds.
type scripted struct {
	errs  []error
	calls int
}

func (s *scripted) Generate(_ context.Context, _ Request) (*Response, error) {
	defer func() { s.calls++ }()
	if s.calls < len(s.errs) && s.errs[s.calls] != nil {
		return nil, s.errs[s.calls]
	}
	return &Response{Content: json.RawMessage(`{}`), Model: "scripted"}, nil
}

func (s *scripted) ModelID() string { return "scripted" }

func testRetrier(p Provider, slept *[]time.Duration) *retrier {
	return &retrier{
		next: p,
		cfg: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 10 * time.Millisecond,
			MaxWait:     100 * time.Millisecond,
			Multiplier:  2.0,
		},
		sleep: func(_ context.Context, d time.Duration) error {
			if slept != nil {
				*slept = append(*slept, d)
			}
			return nil
		},
	}
}

func TestRetry_RecoversFromTransientFault(t *testing.T) {
	p := &scripted{errs: []error{&Fault{Reason: ReasonUnavailable}}}
	r := testRetrier(p, nil)

	resp, err := r.Generate(context.Background(), Request{Prompt: "p"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp == nil || p.calls != 2 {
		t.Errorf("calls = %d, want 2", p.calls)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	fault := &Fault{Reason: ReasonUnavailable, Err: errors.New("down")}
	p := &scripted{errs: []error{fault, fault, fault, fault}}
	r := testRetrier(p, nil)

	_, err := r.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if p.calls != 3 {
		t.Errorf("calls = %d, want MaxAttempts", p.calls)
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	p := &scripted{errs: []error{
		&Fault{Reason: ReasonRateLimited, RetryAfter: 700 * time.Millisecond},
	}}
	var slept []time.Duration
	r := testRetrier(p, &slept)

	if _, err := r.Generate(context.Background(), Request{Prompt: "p"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(slept) != 1 || slept[0] != 700*time.Millisecond {
		t.Errorf("slept = %v, want the server-requested pause", slept)
	}
}

func TestRetry_BadPayloadGetsOneReask(t *testing.T) {
	bad := badPayload(json.RawMessage(`{`), errors.New("cut off"))
	p := &scripted{errs: []error{bad, bad, bad}}
	r := testRetrier(p, nil)

	_, err := r.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil {
		t.Fatal("expected the second bad payload to surface")
	}
	if p.calls != 2 {
		t.Errorf("calls = %d, want exactly one re-ask", p.calls)
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	p := &scripted{errs: []error{&Fault{Reason: ReasonTruncated}}}
	r := testRetrier(p, nil)

	_, err := r.Generate(context.Background(), Request{Prompt: "p"})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonTruncated {
		t.Fatalf("err = %v, want the truncation fault", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestRetry_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &scripted{errs: []error{ctx.Err()}}
	r := testRetrier(p, nil)

	_, err := r.Generate(ctx, Request{Prompt: "p"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if p.calls != 1 {
		t.Errorf("calls = %d, want 1", p.calls)
	}
}

func TestRetryDelay_BackoffCapped(t *testing.T) {
	r := testRetrier(&scripted{}, nil)

	for attempt := 0; attempt < 10; attempt++ {
		d := r.delay(attempt, &Fault{Reason: ReasonUnavailable})
		if d < 0 {
			t.Fatalf("delay(%d) = %v, want non-negative", attempt, d)
		}
		// MaxWait plus the jitter band.
		if d > 120*time.Millisecond {
			t.Fatalf("delay(%d) = %v, exceeds the cap", attempt, d)
		}
	}
}
