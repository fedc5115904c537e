package assistant

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/skillvue/skillvue-backend/internal/config"
)

// ErrNotConfigured is returned when no generative-API key is set.
var ErrNotConfigured = errors.New("assistant api key not configured")

// Client is a thin passthrough to the external generative API. The platform
// never interprets model output here; it only surfaces what the provider
// advertises.
type Client struct {
	api *openai.Client
}

// NewClient builds a client from config. Returns nil when no key is set so
// callers can register a degraded handler instead.
func NewClient(cfg *config.Config) *Client {
	if cfg.OpenAI.APIKey == "" {
		return nil
	}
	c := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		c.BaseURL = cfg.OpenAI.BaseURL
	}
	return &Client{api: openai.NewClientWithConfig(c)}
}

// AvailableModels lists the model ids the provider currently offers.
func (c *Client) AvailableModels(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	resp, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		out = append(out, m.ID)
	}
	return out, nil
}
