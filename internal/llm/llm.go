package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Turn is a single prior exchange in a chat conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// SchemaType enumerates the JSON types supported in response schemas.
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
	TypeNumber SchemaType = "number"
)

// Schema constrains the shape of structured model output.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
}

// Client abstracts LLM providers for resume assistance.
type Client interface {
	// GenerateText returns free-form text for the prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateJSON returns structured output conforming to schema.
	GenerateJSON(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)

	// Chat continues a conversation under a system instruction.
	Chat(ctx context.Context, system string, history []Turn, message string) (string, error)
}

// ErrNotConfigured is returned when no provider API key is set.
var ErrNotConfigured = errors.New("LLM not configured")

// NotConfiguredClient is used when no API key is available. Every call
// fails with ErrNotConfigured so callers can fall back gracefully.
type NotConfiguredClient struct{}

func (NotConfiguredClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

func (NotConfiguredClient) GenerateJSON(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error) {
	_ = ctx
	_ = prompt
	_ = schema
	return nil, ErrNotConfigured
}

func (NotConfiguredClient) Chat(ctx context.Context, system string, history []Turn, message string) (string, error) {
	_ = ctx
	_ = system
	_ = history
	_ = message
	return "", ErrNotConfigured
}
