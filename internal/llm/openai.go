package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiAliases are the friendly names accepted in config.
var openaiAliases = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// openaiClient adapts the OpenAI chat completions API to Provider. With
// a BaseURL it also serves OpenRouter and other compatible endpoints,
// which is how the openrouter provider is wired.
type openaiClient struct {
	sdk   *openai.Client
	model string
}

func newOpenAI(cfg OpenAIConfig) (*openaiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}
	return &openaiClient{
		sdk:   openai.NewClientWithConfig(sdkCfg),
		model: aliasOrID(cfg.Model, openaiAliases),
	}, nil
}

func (o *openaiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq, err := o.buildRequest(req)
	if err != nil {
		return nil, err
	}

	resp, err := o.sdk.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, httpFault(apiErr.HTTPStatusCode, err)
		}
		return nil, &Fault{Reason: ReasonUnavailable, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, badPayload(nil, fmt.Errorf("no choices in answer"))
	}
	choice := resp.Choices[0]

	return &Response{
		Content: json.RawMessage(choice.Message.Content),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:     resp.Model,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}

func (o *openaiClient) ModelID() string { return o.model }

func (o *openaiClient) buildRequest(req Request) (openai.ChatCompletionRequest, error) {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:               o.model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return openai.ChatCompletionRequest{}, fmt.Errorf("marshal schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}
	return chatReq, nil
}
