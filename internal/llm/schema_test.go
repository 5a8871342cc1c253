package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func outlineSchema() *Schema {
	return &Schema{
		Name: "outline",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"weeks": map[string]any{"type": "integer"},
			},
			"required": []any{"title", "weeks"},
		},
	}
}

func TestSchemaCheck_ValidDocument(t *testing.T) {
	s := outlineSchema()
	if err := s.Check(json.RawMessage(`{"title":"Go","weeks":6}`)); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestSchemaCheck_MissingField(t *testing.T) {
	s := outlineSchema()
	err := s.Check(json.RawMessage(`{"title":"Go"}`))
	if reason, ok := ReasonOf(err); !ok || reason != ReasonBadPayload {
		t.Fatalf("err = %v, want bad-payload fault", err)
	}
}

func TestSchemaCheck_NotJSON(t *testing.T) {
	s := outlineSchema()
	err := s.Check(json.RawMessage(`Sorry, I can't help with that.`))
	if reason, ok := ReasonOf(err); !ok || reason != ReasonBadPayload {
		t.Fatalf("err = %v, want bad-payload fault", err)
	}
}

func TestSchemaCheck_KeepsOffendingBody(t *testing.T) {
	s := outlineSchema()
	err := s.Check(json.RawMessage(`{"weeks":"six"}`))

	var f *Fault
	if !errors.As(err, &f) {
		t.Fatalf("err = %T, want *Fault", err)
	}
	if string(f.Body) != `{"weeks":"six"}` {
		t.Errorf("body = %s, want the rejected document", f.Body)
	}
}

func TestConformance_RejectsMismatch(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"title":42}`)})
	p := withConformance(mock)

	_, err := p.Generate(context.Background(), Request{Prompt: "p", Schema: outlineSchema()})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonBadPayload {
		t.Fatalf("err = %v, want bad-payload fault", err)
	}
}

func TestConformance_PassesValidDocument(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"title":"Go","weeks":6}`)})
	p := withConformance(mock)

	resp, err := p.Generate(context.Background(), Request{Prompt: "p", Schema: outlineSchema()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"title":"Go","weeks":6}` {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestConformance_SchemaFreePassthrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`plain text`)})
	p := withConformance(mock)

	if _, err := p.Generate(context.Background(), Request{Prompt: "p"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestConformance_TruncationFaults(t *testing.T) {
	p := withConformance(fixedProvider{resp: &Response{
		Content:   json.RawMessage(`{"title":"Lea`),
		Truncated: true,
	}})

	_, err := p.Generate(context.Background(), Request{Prompt: "p", Schema: outlineSchema()})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonTruncated {
		t.Fatalf("err = %v, want truncation fault", err)
	}
}

// fixedProvider always returns the same response.
type fixedProvider struct {
	resp *Response
}

func (f fixedProvider) Generate(context.Context, Request) (*Response, error) {
	return f.resp, nil
}

func (f fixedProvider) ModelID() string { return "fixed" }
