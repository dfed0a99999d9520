package oracle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/genai"
)

// Client calls the Gemini API with the fixed normalization instruction.
// The underlying SDK client is created lazily on first use so the service
// can boot in rule-based mode without Gemini credentials.
type Client struct {
	apiKey string
	model  string
	logger *slog.Logger

	once    sync.Once
	initErr error
	genai   *genai.Client
}

// NewClient builds a Gemini oracle client.
func NewClient(apiKey, model string, logger *slog.Logger) *Client {
	if model == "" {
		model = "gemini-1.5-pro"
	}
	return &Client{apiKey: apiKey, model: model, logger: logger}
}

func (c *Client) init(ctx context.Context) error {
	c.once.Do(func() {
		if c.apiKey == "" {
			c.initErr = fmt.Errorf("gemini api key is not configured")
			return
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.apiKey})
		if err != nil {
			c.initErr = fmt.Errorf("create gemini client: %w", err)
			return
		}
		c.genai = client
	})
	return c.initErr
}

// Generate sends raw order text to the model and returns its full reply text.
func (c *Client) Generate(ctx context.Context, text string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(1)),
		TopP:              genai.Ptr(float32(0.95)),
		TopK:              genai.Ptr(float32(64)),
		ResponseMIMEType:  "text/plain",
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	result, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(text), config)
	if err != nil {
		c.logger.Error("gemini request failed", slog.String("model", c.model), slog.String("error", err.Error()))
		return "", fmt.Errorf("generate content: %w", err)
	}

	reply := result.Text()
	if reply == "" {
		return "", fmt.Errorf("empty reply from model")
	}
	return reply, nil
}
