package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
)

func echoTool(executed *bool) *Tool {
	return &Tool{
		Name:        "echo",
		Description: "echoes the text argument",
		Parameters: objectSchema(map[string]*jsonschema.Schema{
			"text": stringParam("text to echo"),
		}, "text"),
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			if executed != nil {
				*executed = true
			}
			return stringArg(args, "text"), nil
		},
	}
}

func TestDispatchRunsHandler(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(echoTool(nil)); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	result, err := r.Dispatch(context.Background(), "echo", map[string]any{"text": "привет"})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if result != "привет" {
		t.Fatalf("unexpected result: %q", result)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Dispatch(context.Background(), "nope", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestDispatchMissingRequiredArgumentSkipsHandler(t *testing.T) {
	r := NewRegistry()
	executed := false
	if err := r.Register(echoTool(&executed)); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	_, err := r.Dispatch(context.Background(), "echo", map[string]any{"other": 1})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments, got %v", err)
	}
	if executed {
		t.Fatalf("handler must not run on invalid arguments")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(echoTool(nil)); err != nil {
		t.Fatalf("expected first register to succeed, got %v", err)
	}
	if err := r.Register(echoTool(nil)); err == nil {
		t.Fatalf("expected duplicate register to fail")
	}
}

func TestSpecsKeepRegistrationOrderAndSchema(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(echoTool(nil)); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}
	if err := r.Register(&Tool{
		Name:        "noop",
		Description: "does nothing",
		Handler: func(ctx context.Context, args map[string]any) (string, error) {
			return "", nil
		},
	}); err != nil {
		t.Fatalf("expected register to succeed, got %v", err)
	}

	specs := r.Specs()
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	first := specs[0].OfFunction
	if first == nil || first.Function.Name != "echo" {
		t.Fatalf("unexpected first spec: %#v", specs[0])
	}

	params := first.Function.Parameters
	required, ok := params["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "text" {
		t.Fatalf("required keys not propagated: %#v", params["required"])
	}
	properties, ok := params["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties missing: %#v", params)
	}
	text, ok := properties["text"].(map[string]any)
	if !ok || text["type"] != "string" {
		t.Fatalf("unexpected text property: %#v", properties["text"])
	}

	// A tool without declared parameters still advertises an object schema.
	second := specs[1].OfFunction
	if second == nil || second.Function.Parameters["type"] != "object" {
		t.Fatalf("unexpected second spec parameters: %#v", second.Function.Parameters)
	}
}

func TestIntArgAcceptsJSONNumbers(t *testing.T) {
	args := map[string]any{"limit": float64(3)}
	if got := intArg(args, "limit", 5); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := intArg(map[string]any{}, "limit", 5); got != 5 {
		t.Fatalf("expected default 5, got %d", got)
	}
}
