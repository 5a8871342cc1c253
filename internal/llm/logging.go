package llm

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"mentora/internal/store"
)

type purposeKey struct{}

// WithPurpose labels the context with what the call is for ("roadmap",
// "deck-gen", ...). The label ends up on the logged request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the purpose label, or "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

// recorder appends one event to the request log per Generate call, with
// the full request and response bodies for later inspection.
type recorder struct {
	next   Provider
	events store.EventRepo
	logger *zap.Logger
}

// WithLogging wraps a Provider with request-log recording. A failure to
// append the event is logged and swallowed; it never fails the call.
func WithLogging(p Provider, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recorder{next: p, events: events, logger: logger}
}

func (r *recorder) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.next.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    r.next.ModelID(),
		Model:       r.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if appendErr := r.events.AppendLLMRequest(ctx, data); appendErr != nil {
		r.logger.Warn("append llm request event", zap.Error(appendErr))
	}
	return resp, err
}

func (r *recorder) ModelID() string { return r.next.ModelID() }

// renderRequest serializes the request for the log as a small JSON
// document, keeping `mentora llm view` output machine-readable.
func renderRequest(req Request) string {
	body := struct {
		System      string         `json:"system,omitempty"`
		Prompt      string         `json:"prompt"`
		Schema      string         `json:"schema,omitempty"`
		Definition  map[string]any `json:"definition,omitempty"`
		MaxTokens   int            `json:"max_tokens"`
		Temperature float64        `json:"temperature"`
	}{
		System:      req.System,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
	if req.Schema != nil {
		body.Schema = req.Schema.Name
		body.Definition = req.Schema.Definition
	}

	out, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return req.Prompt
	}
	return string(out)
}
