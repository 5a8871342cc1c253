// Package llm turns a single prompt into schema-conforming JSON through
// one of several hosted model providers. Every request is single-turn:
// the generators in this program never hold a conversation, they ask one
// question and decode one structured answer.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by each model adapter and by the decorators
// stacked on top of them (conformance, logging, retry).
type Provider interface {
	// Generate sends one prompt and returns the model's answer. When
	// req.Schema is set the returned Content is JSON conforming to it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model the provider is configured for.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System frames the model's role. Optional.
	System string

	// Prompt is the user-side content of the request.
	Prompt string

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the answer before returning it.
	Schema *Schema

	// MaxTokens caps the answer length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Response is the model's answer.
type Response struct {
	// Content is the generated text. With a Schema on the request this
	// is the validated JSON document.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call, as reported by
	// the provider.
	Model string

	// Truncated is set when generation stopped at the MaxTokens cap,
	// which with structured output means the document is cut off.
	Truncated bool
}

// Usage counts tokens for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
