package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openAIClient wraps an OpenAI compatible chat client.
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient builds a Client over the OpenAI chat completions API.
func NewOpenAIClient(apiKey, model string, temperature float64) (Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &openAIClient{
		client:      &client,
		model:       model,
		temperature: temperature,
	}, nil
}

func (c *openAIClient) Decide(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, tools []openai.ChatCompletionToolUnionParam) (*Decision, error) {
	params := openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    messages,
		Temperature: openai.Float(c.temperature),
	}
	if len(tools) > 0 {
		params.Tools = tools
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		slog.Error("failed to call llm API", "error", err.Error())
		return nil, fmt.Errorf("failed to call chat completions API: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return &Decision{}, nil
	}

	message := resp.Choices[0].Message
	decision := &Decision{Assistant: message.ToParam()}

	for _, tc := range message.ToolCalls {
		// OpenAI tool calls are function calls only for now.
		if tc.Type != "function" {
			continue
		}
		decision.ToolCalls = append(decision.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}

	if len(decision.ToolCalls) == 0 {
		decision.Final = message.Content
	}
	return decision, nil
}

var _ Client = (*openAIClient)(nil)
