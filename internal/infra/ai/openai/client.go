package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultModel     = "gpt-4"
	defaultMaxTokens = 512
)

// zeroTemperature is sent instead of 0, which go-openai drops as omitempty.
const zeroTemperature = math.SmallestNonzeroFloat32

type Client struct {
	*openai.Client
	Model     string
	MaxTokens int
	JSONMode  bool
}

type Options struct {
	BaseURL   string
	Model     string
	MaxTokens int
	// JSONMode requests the json_object response format; older models such as gpt-4 reject it.
	JSONMode bool
}

func NewClient(apiKey string, opts Options) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &Client{
		Client:    openai.NewClientWithConfig(cfg),
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
		JSONMode:  opts.JSONMode,
	}
}

// Complete sends one system + user turn with deterministic sampling.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	model := c.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if c.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	// Reasoning models (o1/o3/o4/gpt-5*) take MaxCompletionTokens and fix sampling themselves.
	if isReasoningModel(model) {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
		req.Temperature = zeroTemperature
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func isReasoningModel(model string) bool {
	for _, p := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, p) {
			return true
		}
	}
	return false
}
