package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestToGenaiSchema_Object(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a roadmap",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"weeks": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "weeks"},
	}

	got := toGenaiSchema(def)
	if got.Type != genai.TypeObject {
		t.Fatalf("type = %v, want object", got.Type)
	}
	if got.Description != "a roadmap" {
		t.Errorf("description = %q", got.Description)
	}
	if len(got.Properties) != 2 {
		t.Fatalf("got %d properties, want 2", len(got.Properties))
	}
	if got.Properties["title"].Type != genai.TypeString {
		t.Errorf("title type = %v", got.Properties["title"].Type)
	}
	if got.Properties["weeks"].Type != genai.TypeInteger {
		t.Errorf("weeks type = %v", got.Properties["weeks"].Type)
	}
	if len(got.Required) != 2 {
		t.Errorf("required = %v", got.Required)
	}
}

func TestToGenaiSchema_ArrayOfObjects(t *testing.T) {
	def := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"front": map[string]any{"type": "string"},
			},
		},
	}

	got := toGenaiSchema(def)
	if got.Type != genai.TypeArray {
		t.Fatalf("type = %v, want array", got.Type)
	}
	if got.Items == nil || got.Items.Type != genai.TypeObject {
		t.Fatalf("items = %+v, want object schema", got.Items)
	}
	if got.Items.Properties["front"].Type != genai.TypeString {
		t.Errorf("front type = %v", got.Items.Properties["front"].Type)
	}
}

func TestToGenaiSchema_StringEnum(t *testing.T) {
	def := map[string]any{
		"type": "string",
		"enum": []any{"beginner", "intermediate", "advanced"},
	}

	got := toGenaiSchema(def)
	if got.Type != genai.TypeString {
		t.Fatalf("type = %v, want string", got.Type)
	}
	if len(got.Enum) != 3 || got.Enum[0] != "beginner" {
		t.Errorf("enum = %v", got.Enum)
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	if _, err := newGemini(context.Background(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
