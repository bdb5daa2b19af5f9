// Package assistant implements the conversational model client behind the
// planning assistant, using the Anthropic messages API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"vivaha/config"
	"vivaha/internal/domain/service"
	"vivaha/internal/errors"
)

const (
	messagesEndpoint = "https://api.anthropic.com/v1/messages"
	apiVersion       = "2023-06-01"

	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 1024
)

type anthropicClient struct {
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type messagesRequest struct {
	Model     string                     `json:"model"`
	MaxTokens int                        `json:"max_tokens"`
	System    string                     `json:"system,omitempty"`
	Messages  []service.AssistantMessage `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// NewAnthropicClient creates the assistant model client.
func NewAnthropicClient(cfg *config.AssistantConfig) service.AssistantClient {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &anthropicClient{
		apiKey:     cfg.APIKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *anthropicClient) Complete(ctx context.Context, system string, messages []service.AssistantMessage) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("assistant api key not configured")
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  messages,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshal assistant request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, messagesEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", errors.Wrap(err, "build assistant request")
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "call assistant api")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read assistant response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("assistant api returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed messagesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "decode assistant response")
	}

	for _, block := range parsed.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", errors.New("assistant response contained no text")
}
