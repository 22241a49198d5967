// Package claude provides the natural-language fallback handler backed by
// the Gemini API.
package claude

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"actlog/internal/interpret"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Client answers natural-language questions about log lines.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a fallback client. An empty model selects DefaultModel.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Ask sends one question about a log line and returns the model's answer.
// A single attempt is made; callers decide whether an error ends the query.
func (c *Client) Ask(ctx context.Context, lineContext, query string) (string, error) {
	prompt := buildPrompt(lineContext, query)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	answer := strings.TrimSpace(result.Text())
	if answer == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return answer, nil
}

// Handler adapts the client to the interpreter's fallback hook.
func (c *Client) Handler() interpret.FallbackHandler {
	return c.Ask
}

// buildPrompt embeds the line context into the question sent to the model.
func buildPrompt(lineContext, query string) string {
	var b strings.Builder
	b.WriteString("You are helping a developer inspect an event log line.\n")
	b.WriteString("The parsed line:\n\n")
	b.WriteString(lineContext)
	b.WriteString("\nAnswer the question concisely using only the information above.\n")
	b.WriteString("Question: ")
	b.WriteString(query)
	return b.String()
}
