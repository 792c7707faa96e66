// Package ai calls an OpenRouter-compatible chat-completions API to generate
// slide content, presentation outlines and color palettes. Model output is
// never trusted: every response goes through a defensive parser that degrades
// to usable defaults instead of failing the request.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
)

// Client is a thin wrapper over the chat-completions endpoint.
type Client struct {
	client *resty.Client
	model  string
}

// Options configures the client. BaseURL and Model must be set; Timeout
// defaults to one minute.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// New creates a generation client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(opts.APIKey).
		SetTimeout(timeout)

	return &Client{client: c, model: opts.Model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete runs one chat exchange and returns the raw assistant text.
func (c *Client) complete(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var out chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&reqBody).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content generated")
	}
	return out.Choices[0].Message.Content, nil
}

// GenerateSlideContent generates title/bullets/subtitle for a single slide.
func (c *Client) GenerateSlideContent(ctx context.Context, req SlideContentRequest) (*GeneratedSlideContent, error) {
	raw, err := c.complete(ctx, slideSystemPrompt, buildSlideContentPrompt(req), defaultMaxTokens, defaultTemperature)
	if err != nil {
		return nil, err
	}
	return parseSlideContent(raw), nil
}

// GenerateOutline generates a full presentation outline.
func (c *Client) GenerateOutline(ctx context.Context, req OutlineRequest) (*Outline, error) {
	raw, err := c.complete(ctx, outlineSystemPrompt, buildOutlinePrompt(req), defaultMaxTokens, defaultTemperature)
	if err != nil {
		return nil, err
	}
	return parseOutline(raw), nil
}

// GeneratePalette generates a topic-appropriate color palette.
func (c *Client) GeneratePalette(ctx context.Context, req PaletteRequest) (*Palette, error) {
	raw, err := c.complete(ctx, paletteSystemPrompt, buildPalettePrompt(req), 500, defaultTemperature)
	if err != nil {
		return nil, err
	}
	return parsePalette(raw), nil
}

// ImproveContent rewrites existing slide text per the requested improvements.
// On empty output the current content is returned unchanged.
func (c *Client) ImproveContent(ctx context.Context, current string, improvements []string) (string, error) {
	raw, err := c.complete(ctx, improveSystemPrompt, buildImprovePrompt(current, improvements), 500, 0.5)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return current, nil
	}
	return raw, nil
}
