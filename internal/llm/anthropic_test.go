package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicForTest(t *testing.T, handler http.HandlerFunc) *anthropicClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &anthropicClient{
		sdk: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(server.URL),
		),
		model: "claude-haiku-4-5-20251001",
	}
}

func anthropicAnswer(stopReason, text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_test",
			"type":        "message",
			"role":        "assistant",
			"content":     []map[string]any{{"type": "text", "text": text}},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stopReason,
			"usage":       map[string]any{"input_tokens": 41, "output_tokens": 27},
		})
	}
}

func TestAnthropicGenerate(t *testing.T) {
	c := anthropicForTest(t, anthropicAnswer("end_turn", `{"title":"Learn Go"}`))

	resp, err := c.Generate(context.Background(), Request{
		System:    "You are a tutor.",
		Prompt:    "Plan a roadmap.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"title":"Learn Go"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 41 || resp.Usage.OutputTokens != 27 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Truncated {
		t.Error("end_turn answer reported as truncated")
	}
}

func TestAnthropicGenerate_TruncationFlagged(t *testing.T) {
	c := anthropicForTest(t, anthropicAnswer("max_tokens", `{"title":"Lea`))

	resp, err := c.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 4})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !resp.Truncated {
		t.Error("max_tokens answer not reported as truncated")
	}
}

func TestAnthropicGenerate_RateLimited(t *testing.T) {
	c := anthropicForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
		})
	})

	_, err := c.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 64})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonRateLimited {
		t.Fatalf("err = %v, want rate-limited fault", err)
	}
}

func TestAnthropicGenerate_ServerError(t *testing.T) {
	c := anthropicForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "boom"},
		})
	})

	_, err := c.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 64})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonUnavailable {
		t.Fatalf("err = %v, want unavailable fault", err)
	}
}

func TestNewAnthropicRequiresKey(t *testing.T) {
	if _, err := newAnthropic(AnthropicConfig{Model: "claude-haiku"}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestAnthropicAliases(t *testing.T) {
	cases := map[string]string{
		"claude-sonnet":             "claude-sonnet-4-20250514",
		"claude-haiku":              "claude-haiku-4-5-20251001",
		"claude-sonnet-4-5-2025xxx": "claude-sonnet-4-5-2025xxx",
	}
	for in, want := range cases {
		if got := aliasOrID(in, anthropicAliases); got != want {
			t.Errorf("aliasOrID(%q) = %q, want %q", in, got, want)
		}
	}
}
