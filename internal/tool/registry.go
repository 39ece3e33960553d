// Package tool implements the dispatch table the orchestration loop uses to
// execute model-requested operations. The set of tools is fixed at startup;
// every tool returns plain descriptive text that is passed back to the model
// verbatim.
package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/openai/openai-go/v3"
)

var (
	// ErrUnknownTool means the requested name is not registered.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrInvalidArguments means a required argument key is missing; the
	// underlying operation is not executed.
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

// Handler executes a tool with already-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Tool is one named operation together with its declared parameter schema.
type Tool struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Handler     Handler
}

// Registry is the fixed name→tool dispatch table.
type Registry struct {
	order []string
	tools map[string]*Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool. Names must be unique.
func (r *Registry) Register(t *Tool) error {
	if t == nil || t.Name == "" {
		return fmt.Errorf("tool must have a name")
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q already registered", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Dispatch validates the arguments against the tool's schema and runs it.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	if t.Parameters != nil {
		for _, key := range t.Parameters.Required {
			if _, present := args[key]; !present {
				return "", fmt.Errorf("%w: tool %q requires %q", ErrInvalidArguments, name, key)
			}
		}
	}
	return t.Handler(ctx, args)
}

// Specs returns the tool declarations in registration order, in the shape the
// model collaborator consumes.
func (r *Registry) Specs() []openai.ChatCompletionToolUnionParam {
	specs := make([]openai.ChatCompletionToolUnionParam, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		specs = append(specs, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: openai.FunctionDefinitionParam{
					Name:        t.Name,
					Description: openai.String(t.Description),
					Parameters:  toFunctionParameters(t.Parameters),
				},
			},
		})
	}
	return specs
}
