package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestMockProvider_ServesScriptInOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`)},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := m.Generate(context.Background(), Request{Prompt: "a"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := m.Generate(context.Background(), Request{Prompt: "b"})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if string(first.Content) != `{"n":1}` || string(second.Content) != `{"n":2}` {
		t.Errorf("answers out of order: %s, %s", first.Content, second.Content)
	}

	if m.CallCount() != 2 {
		t.Errorf("call count = %d, want 2", m.CallCount())
	}
	if m.Calls[0].Prompt != "a" || m.Calls[1].Prompt != "b" {
		t.Errorf("recorded prompts = %q, %q", m.Calls[0].Prompt, m.Calls[1].Prompt)
	}
}

func TestMockProvider_ExhaustedScriptIsUnavailable(t *testing.T) {
	m := NewMockProvider()

	_, err := m.Generate(context.Background(), Request{Prompt: "a"})
	if reason, ok := ReasonOf(err); !ok || reason != ReasonUnavailable {
		t.Fatalf("err = %v, want unavailable fault", err)
	}
}

func TestMockProvider_AddResponse(t *testing.T) {
	m := NewMockProvider()
	m.AddResponse(MockResponse{Content: json.RawMessage(`{}`)})

	if _, err := m.Generate(context.Background(), Request{Prompt: "a"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestNewProvider_Mock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, ok := p.(*MockProvider); !ok {
		t.Fatalf("got %T, want *MockProvider", p)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "abacus"

	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewProvider_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"

	if _, err := NewProvider(context.Background(), cfg, nil, nil); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"anthropic with key", func(c *Config) {
			c.Provider = "anthropic"
			c.Anthropic.APIKey = "k"
		}, false},
		{"openrouter without key", func(c *Config) { c.Provider = "openrouter" }, true},
		{"unknown provider", func(c *Config) { c.Provider = "abacus" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MENTORA_LLM_PROVIDER", "openai")
	t.Setenv("MENTORA_OPENAI_API_KEY", "sk-test")
	t.Setenv("MENTORA_OPENAI_BASE_URL", "https://proxy.example/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.BaseURL != "https://proxy.example/v1" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("defaults not layered: %+v", cfg.Anthropic)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(key, "")
	}

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery with all keys unset")
	}

	t.Setenv("OPENAI_API_KEY", "sk-found")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-found" {
		t.Fatalf("discovered = %+v (%v)", cfg, ok)
	}
}

func TestLookupCost(t *testing.T) {
	p := LookupCost("gpt-4o-mini")
	if p == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	got := p.Cost(1_000_000, 1_000_000)
	if got != 0.75 {
		t.Errorf("cost = %v, want 0.75", got)
	}
	if LookupCost("made-up-model") != nil {
		t.Error("expected nil pricing for unknown model")
	}
}
