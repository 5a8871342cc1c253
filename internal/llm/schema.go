package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema the model's answer must satisfy. Declare one
// per generation shape and reuse it; the compiled form is cached on the
// value after the first Check.
type Schema struct {
	// Name identifies the schema to the provider. Kebab-case.
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the schema itself, as a JSON Schema object.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// Check validates raw against the schema. A failure is reported as a
// bad-payload Fault carrying the offending document.
func (s *Schema) Check(raw json.RawMessage) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badPayload(raw, fmt.Errorf("not valid JSON: %w", err))
	}

	s.compileOnce.Do(s.compile)
	if s.compileErr != nil {
		return fmt.Errorf("schema %q: %w", s.Name, s.compileErr)
	}

	if err := s.compiled.Validate(doc); err != nil {
		return badPayload(raw, err)
	}
	return nil
}

// compile builds the jsonschema form. The compiler wants a decoded JSON
// value, so the definition map goes through one marshal round trip.
func (s *Schema) compile() {
	def, err := json.Marshal(s.Definition)
	if err != nil {
		s.compileErr = fmt.Errorf("marshal definition: %w", err)
		return
	}
	var decoded any
	if err := json.Unmarshal(def, &decoded); err != nil {
		s.compileErr = fmt.Errorf("decode definition: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, decoded); err != nil {
		s.compileErr = err
		return
	}
	s.compiled, s.compileErr = c.Compile(url)
}

// conformer is the decorator that enforces the request schema on the
// adapter's answer, so the individual adapters stay validation-free.
type conformer struct {
	next Provider
}

func withConformance(p Provider) Provider { return &conformer{next: p} }

func (c *conformer) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.next.Generate(ctx, req)
	if err != nil || req.Schema == nil {
		return resp, err
	}
	if resp.Truncated {
		return nil, &Fault{Reason: ReasonTruncated, Body: resp.Content}
	}
	if err := req.Schema.Check(resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *conformer) ModelID() string { return c.next.ModelID() }
