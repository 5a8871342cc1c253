package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiForTest(t *testing.T, handler http.HandlerFunc) *openaiClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return &openaiClient{
		sdk:   openai.NewClientWithConfig(cfg),
		model: "gpt-4o-mini",
	}
}

func openaiAnswer(finishReason, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			}},
			"usage": map[string]any{
				"prompt_tokens":     33,
				"completion_tokens": 21,
				"total_tokens":      54,
			},
		})
	}
}

func TestOpenAIGenerate(t *testing.T) {
	c := openaiForTest(t, openaiAnswer("stop", `{"title":"Learn SQL"}`))

	resp, err := c.Generate(context.Background(), Request{
		System:    "You are a tutor.",
		Prompt:    "Outline a course.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"title":"Learn SQL"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 54 {
		t.Errorf("total tokens = %d, want 54", resp.Usage.TotalTokens)
	}
	if resp.Truncated {
		t.Error("stop answer reported as truncated")
	}
}

func TestOpenAIGenerate_TruncationFlagged(t *testing.T) {
	c := openaiForTest(t, openaiAnswer("length", `{"title":"Lea`))

	resp, err := c.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 4})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !resp.Truncated {
		t.Error("length answer not reported as truncated")
	}
}

func TestOpenAIGenerate_RateLimited(t *testing.T) {
	c := openaiForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "tokens", "message": "slow down"},
		})
	})

	_, err := c.Generate(context.Background(), Request{Prompt: "p", MaxTokens: 64})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonRateLimited {
		t.Fatalf("err = %v, want rate-limited fault", err)
	}
}

func TestOpenAIBuildRequest(t *testing.T) {
	c := &openaiClient{model: "gpt-4o-mini"}
	schema := &Schema{
		Name: "course-outline",
		Definition: map[string]any{
			"type":       "object",
			"properties": map[string]any{"title": map[string]any{"type": "string"}},
			"required":   []any{"title"},
		},
	}

	req, err := c.buildRequest(Request{
		System:      "You are a tutor.",
		Prompt:      "Outline a course.",
		Schema:      schema,
		MaxTokens:   512,
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	if len(req.Messages) != 2 {
		t.Fatalf("got %d messages, want system + user", len(req.Messages))
	}
	if req.Messages[0].Role != openai.ChatMessageRoleSystem || req.Messages[1].Role != openai.ChatMessageRoleUser {
		t.Errorf("roles = %s, %s", req.Messages[0].Role, req.Messages[1].Role)
	}
	if req.Messages[1].Content != "Outline a course." {
		t.Errorf("user content = %q", req.Messages[1].Content)
	}
	if req.ResponseFormat == nil || req.ResponseFormat.JSONSchema == nil {
		t.Fatal("schema request missing response format")
	}
	if req.ResponseFormat.JSONSchema.Name != "course-outline" || !req.ResponseFormat.JSONSchema.Strict {
		t.Errorf("response format = %+v", req.ResponseFormat.JSONSchema)
	}
}

func TestOpenAIBuildRequest_NoSystem(t *testing.T) {
	c := &openaiClient{model: "gpt-4o-mini"}

	req, err := c.buildRequest(Request{Prompt: "ping", MaxTokens: 8})
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != openai.ChatMessageRoleUser {
		t.Errorf("messages = %+v, want a single user message", req.Messages)
	}
	if req.ResponseFormat != nil {
		t.Error("schema-free request carries a response format")
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := newOpenAI(OpenAIConfig{Model: "gpt-4o-mini"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
