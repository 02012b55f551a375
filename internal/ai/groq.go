package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqProvider talks to the Groq chat-completions API. Groq has no
// official Go SDK, so this is a plain HTTP client.
type GroqProvider struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float32
	base        string
	http        *http.Client
}

// NewGroqProvider builds a Groq client from the shared provider config.
func NewGroqProvider(cfg ProviderConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("groq API key is required")
	}
	return &GroqProvider{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		base:        groqBaseURL,
		http:        &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (p *GroqProvider) Name() string { return string(ProviderGroq) }

type groqChatRequest struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float32             `json:"temperature,omitempty"`
}

type groqChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends one chat completion and returns the assistant text.
func (p *GroqProvider) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	msgs := make([]map[string]string, 0, len(messages)+1)
	if system != "" {
		msgs = append(msgs, map[string]string{"role": roleSystem, "content": system})
	}
	for _, m := range messages {
		msgs = append(msgs, map[string]string{"role": m.Role, "content": m.Content})
	}

	body, _ := json.Marshal(groqChatRequest{
		Model:       p.model,
		Messages:    msgs,
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("groq api error: %s", string(respBody))
	}

	var ch groqChatResponse
	if err := json.Unmarshal(respBody, &ch); err != nil {
		return "", fmt.Errorf("decode error: %w, body: %s", err, string(respBody))
	}
	if ch.Error != nil {
		return "", fmt.Errorf("api error: %s", ch.Error.Message)
	}
	if len(ch.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return ch.Choices[0].Message.Content, nil
}
