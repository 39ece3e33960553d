// Package llm provides the model-decision client for the agent loop.
package llm

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// ToolCall is one tool invocation requested by the model. Arguments is the
// raw JSON object string as produced by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Decision is the discriminated outcome of one model step: either a final
// answer text, or an ordered list of tool calls to execute.
type Decision struct {
	Final     string
	ToolCalls []ToolCall

	// Assistant is the assistant message to thread back into the context
	// before the tool results when tool calls were requested.
	Assistant openai.ChatCompletionMessageParamUnion
}

// Client requests one decision from the model. The call blocks for the
// duration of the request.
type Client interface {
	Decide(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, tools []openai.ChatCompletionToolUnionParam) (*Decision, error)
}
