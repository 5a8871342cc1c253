package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout caps one generation call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig picks the cheap model of each provider and a modest
// retry budget.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv layers MENTORA_* environment variables over the
// defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setenv := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setenv(&cfg.Provider, "MENTORA_LLM_PROVIDER")
	setenv(&cfg.Anthropic.APIKey, "MENTORA_ANTHROPIC_API_KEY")
	setenv(&cfg.Anthropic.Model, "MENTORA_ANTHROPIC_MODEL")
	setenv(&cfg.OpenAI.APIKey, "MENTORA_OPENAI_API_KEY")
	setenv(&cfg.OpenAI.Model, "MENTORA_OPENAI_MODEL")
	setenv(&cfg.OpenAI.BaseURL, "MENTORA_OPENAI_BASE_URL")
	setenv(&cfg.Gemini.APIKey, "MENTORA_GEMINI_API_KEY")
	setenv(&cfg.Gemini.Model, "MENTORA_GEMINI_MODEL")
	setenv(&cfg.OpenRouter.APIKey, "MENTORA_OPENROUTER_API_KEY")
	setenv(&cfg.OpenRouter.Model, "MENTORA_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig probes the standard vendor key variables and returns a
// Config for the first provider with a key, trying Gemini, then OpenAI,
// Anthropic, and OpenRouter. False means no key was found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	keys := map[string]struct {
		key string
		env string
	}{
		"anthropic":  {c.Anthropic.APIKey, "MENTORA_ANTHROPIC_API_KEY"},
		"openai":     {c.OpenAI.APIKey, "MENTORA_OPENAI_API_KEY"},
		"gemini":     {c.Gemini.APIKey, "MENTORA_GEMINI_API_KEY"},
		"openrouter": {c.OpenRouter.APIKey, "MENTORA_OPENROUTER_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	need, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if need.key == "" {
		return fmt.Errorf("%s is required for the %s provider", need.env, c.Provider)
	}
	return nil
}
