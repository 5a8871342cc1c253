package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mentora/internal/store"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewProvider builds the configured provider wrapped in the full
// decorator stack: schema conformance innermost, then request logging,
// then retry, so every attempt is logged individually.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = newAnthropic(cfg.Anthropic)
	case "openai":
		base, err = newOpenAI(cfg.OpenAI)
	case "gemini":
		base, err = newGemini(ctx, cfg.Gemini)
	case "openrouter":
		// OpenRouter speaks the OpenAI wire protocol.
		oai := OpenAIConfig{
			APIKey:  cfg.OpenRouter.APIKey,
			Model:   cfg.OpenRouter.Model,
			BaseURL: cfg.OpenRouter.BaseURL,
		}
		if oai.BaseURL == "" {
			oai.BaseURL = openRouterBaseURL
		}
		base, err = newOpenAI(oai)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(withConformance(base), events, logger), cfg.Retry), nil
}

// aliasOrID resolves a friendly model name through the adapter's alias
// table, passing unknown names through so exact model IDs still work.
func aliasOrID(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
