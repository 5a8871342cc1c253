package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mentora/internal/store"
)

// captureRepo records appended LLM request events and stubs the rest of
// the event log.
type captureRepo struct {
	appended  []store.LLMRequestEventData
	appendErr error
}

func (c *captureRepo) AppendFlowEvent(context.Context, store.FlowEventData) error { return nil }
func (c *captureRepo) RecentFlowEvents(context.Context, store.QueryOpts) ([]store.FlowEvent, error) {
	return nil, nil
}
func (c *captureRepo) AppendReviewEvent(context.Context, store.ReviewEventData) error { return nil }
func (c *captureRepo) DeckStats(context.Context, string) (store.ReviewStats, error) {
	return store.ReviewStats{}, nil
}
func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if c.appendErr != nil {
		return c.appendErr
	}
	c.appended = append(c.appended, data)
	return nil
}
func (c *captureRepo) RecentLLMRequests(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}
func (c *captureRepo) Usage(context.Context) ([]store.LLMUsage, error) { return nil, nil }

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, repo, nil)

	ctx := WithPurpose(context.Background(), "deck-gen")
	if _, err := p.Generate(ctx, Request{Prompt: "make cards"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(repo.appended))
	}
	ev := repo.appended[0]
	if ev.Purpose != "deck-gen" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success || ev.ErrorMessage != "" {
		t.Errorf("success = %v, error = %q", ev.Success, ev.ErrorMessage)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "make cards") {
		t.Errorf("request body missing prompt: %s", ev.RequestBody)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{Err: &Fault{Reason: ReasonUnavailable, Err: errors.New("down")}})
	p := WithLogging(mock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{Prompt: "p"}); err == nil {
		t.Fatal("expected the fault to pass through")
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(repo.appended))
	}
	ev := repo.appended[0]
	if ev.Success {
		t.Error("failed call recorded as success")
	}
	if ev.ErrorMessage == "" {
		t.Error("failed call recorded without an error message")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want the unlabeled default", ev.Purpose)
	}
}

func TestLogging_AppendFailureDoesNotFailCall(t *testing.T) {
	repo := &captureRepo{appendErr: errors.New("database locked")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo, nil)

	if _, err := p.Generate(context.Background(), Request{Prompt: "p"}); err != nil {
		t.Fatalf("generate: %v, want the call to survive a logging failure", err)
	}
}

func TestRenderRequest_IncludesSchema(t *testing.T) {
	body := renderRequest(Request{
		System:    "tutor",
		Prompt:    "outline",
		Schema:    outlineSchema(),
		MaxTokens: 256,
	})
	if !strings.Contains(body, `"outline"`) || !strings.Contains(body, `"schema"`) {
		t.Errorf("rendered request missing schema: %s", body)
	}
	if !json.Valid([]byte(body)) {
		t.Errorf("rendered request is not JSON: %s", body)
	}
}
