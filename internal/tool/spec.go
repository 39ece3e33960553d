package tool

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/openai/openai-go/v3"
)

// toFunctionParameters converts a jsonschema object schema to the JSON Schema
// map the chat completions API expects.
func toFunctionParameters(schema *jsonschema.Schema) openai.FunctionParameters {
	result := map[string]any{"type": "object"}
	if schema == nil {
		result["properties"] = map[string]any{}
		result["required"] = []string{}
		return result
	}

	properties := make(map[string]any, len(schema.Properties))
	for name, prop := range schema.Properties {
		if prop != nil {
			properties[name] = schemaProperty(prop)
		}
	}
	result["properties"] = properties

	if len(schema.Required) > 0 {
		result["required"] = schema.Required
	} else {
		result["required"] = []string{}
	}
	return result
}

func schemaProperty(schema *jsonschema.Schema) map[string]any {
	prop := make(map[string]any)
	if schema.Type != "" {
		prop["type"] = schema.Type
	}
	if schema.Description != "" {
		prop["description"] = schema.Description
	}
	return prop
}

func stringParam(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func integerParam(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description}
}

func objectSchema(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// stringArg reads a string argument, tolerating absent keys.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]any, key string, defaultVal int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return defaultVal
}
