package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"
)

// Fixed sampling parameters for coaching tips.
const (
	MaxTokens   = 500
	Temperature = 0.3
)

// Client sends prompts to an OpenAI-compatible text-completion server
// (llama.cpp, text-generation-webui, vLLM) at <baseURL>/completions.
type Client struct {
	api    *openai.Client
	model  string
	logger *log.Logger
}

func NewClient(httpClient *http.Client, baseURL, apiKey, model string, logger *log.Logger) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(baseURL, "/")
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// Complete returns the text of the first choice, or "" when the server sent none.
// Transport failures, non-2xx statuses and undecodable bodies are errors.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
	c.logger.Debug("sending payload", "model", req.Model, "max_tokens", req.MaxTokens, "temperature", req.Temperature)

	resp, err := c.api.CreateCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create completion: %w", err)
	}
	c.logger.Debug("raw model response", "id", resp.ID, "choices", len(resp.Choices))

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Text, nil
}
