package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// geminiAliases are the friendly names accepted in config.
var geminiAliases = map[string]string{
	"gemini-flash": "gemini-2.0-flash",
	"gemini-pro":   "gemini-2.0-pro",
}

// geminiClient adapts the Gemini API to Provider.
type geminiClient struct {
	sdk   *genai.Client
	model string
}

func newGemini(ctx context.Context, cfg GeminiConfig) (*geminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiClient{
		sdk:   sdk,
		model: aliasOrID(cfg.Model, geminiAliases),
	}, nil
}

func (g *geminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(req.Schema.Definition)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	}}

	result, err := g.sdk.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, httpFault(apiErr.Code, err)
		}
		return nil, &Fault{Reason: ReasonUnavailable, Err: err}
	}

	resp := &Response{
		Content:   json.RawMessage(result.Text()),
		Model:     g.model,
		Truncated: geminiTruncated(result),
	}
	if um := result.UsageMetadata; um != nil {
		resp.Usage = Usage{
			InputTokens:  int(um.PromptTokenCount),
			OutputTokens: int(um.CandidatesTokenCount),
			TotalTokens:  int(um.TotalTokenCount),
		}
	}
	return resp, nil
}

func (g *geminiClient) ModelID() string { return g.model }

func geminiTruncated(result *genai.GenerateContentResponse) bool {
	return len(result.Candidates) > 0 && result.Candidates[0].FinishReason == "MAX_TOKENS"
}

// toGenaiSchema rebuilds a JSON Schema object as the genai schema type.
// Gemini does not accept raw JSON Schema, only its own representation,
// and only a subset of the vocabulary.
func toGenaiSchema(def map[string]any) *genai.Schema {
	out := &genai.Schema{}

	switch def["type"] {
	case "object":
		out.Type = genai.TypeObject
		if props, ok := def["properties"].(map[string]any); ok {
			out.Properties = make(map[string]*genai.Schema, len(props))
			for name, sub := range props {
				if subDef, ok := sub.(map[string]any); ok {
					out.Properties[name] = toGenaiSchema(subDef)
				}
			}
		}
		out.Required = stringList(def["required"])
	case "array":
		out.Type = genai.TypeArray
		if items, ok := def["items"].(map[string]any); ok {
			out.Items = toGenaiSchema(items)
		}
	case "string":
		out.Type = genai.TypeString
		out.Enum = stringList(def["enum"])
	case "integer":
		out.Type = genai.TypeInteger
	case "number":
		out.Type = genai.TypeNumber
	case "boolean":
		out.Type = genai.TypeBoolean
	default:
		out.Type = genai.TypeString
	}

	if desc, ok := def["description"].(string); ok {
		out.Description = desc
	}
	return out
}

func stringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
