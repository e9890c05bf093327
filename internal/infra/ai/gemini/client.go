// Package gemini implements the completion port on Google's Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash-lite"

type Client struct {
	genai *genai.Client
	Model string
}

// NewClient builds a Gemini API client. baseURL is optional and only
// overridden for tests or proxies.
func NewClient(ctx context.Context, apiKey, model, baseURL string) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	c, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{genai: c, Model: model}, nil
}

// Complete sends the system instruction and message with temperature 0 and
// asks for a JSON body.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(
		ctx,
		c.Model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}
