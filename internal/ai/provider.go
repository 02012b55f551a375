// Package ai implements the AI gateway: provider clients for chat
// completion plus the prompt builders that ask the model for the tagged
// output format the session engine parses.
package ai

import (
	"context"
	"fmt"
	"time"
)

// Message is one chat message sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
)

// Provider is a chat-completion backend.
type Provider interface {
	// Complete sends the system prompt and messages and returns the raw
	// assistant text.
	Complete(ctx context.Context, system string, messages []Message) (string, error)

	// Name returns the provider name for logs and metrics.
	Name() string
}

// ProviderName selects a provider implementation.
type ProviderName string

const (
	ProviderGroq      ProviderName = "groq"
	ProviderOpenAI    ProviderName = "openai"
	ProviderAnthropic ProviderName = "anthropic"
)

// ProviderConfig carries the settings shared by all providers.
type ProviderConfig struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// NewProvider builds the provider selected by name.
func NewProvider(name ProviderName, cfg ProviderConfig) (Provider, error) {
	switch name {
	case ProviderGroq, "":
		return NewGroqProvider(cfg)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", name)
	}
}
