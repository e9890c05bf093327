package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model               string   `json:"model"`
	Temperature         *float64 `json:"temperature"`
	MaxTokens           int      `json:"max_tokens"`
	MaxCompletionTokens int      `json:"max_completion_tokens"`
	Stream              bool     `json:"stream"`
	ResponseFormat      *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, status int, body string, got *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const completion = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"doctor\": 9, \"nurse\": 3, \"hospital\": 5, \"notes\": \"ok\"}"}, "finish_reason": "stop"}]
}`

func TestClient_Complete(t *testing.T) {
	var got capturedRequest
	srv := newServer(t, http.StatusOK, completion, &got)

	c := NewClient("test-key", Options{BaseURL: srv.URL + "/v1"})
	reply, err := c.Complete(context.Background(), "system prompt", "the nurse was rude")
	require.NoError(t, err)
	assert.JSONEq(t, `{"doctor": 9, "nurse": 3, "hospital": 5, "notes": "ok"}`, reply)

	assert.Equal(t, "gpt-4", got.Model)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 0, *got.Temperature, 1e-9)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	assert.False(t, got.Stream)
	assert.Nil(t, got.ResponseFormat)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system prompt", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "the nurse was rude", got.Messages[1].Content)
}

func TestClient_Complete_ReasoningModelJSONMode(t *testing.T) {
	var got capturedRequest
	srv := newServer(t, http.StatusOK, completion, &got)

	c := NewClient("test-key", Options{BaseURL: srv.URL + "/v1", Model: "o3-mini", MaxTokens: 256, JSONMode: true})
	_, err := c.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "o3-mini", got.Model)
	assert.Equal(t, 256, got.MaxCompletionTokens)
	assert.Zero(t, got.MaxTokens)
	assert.Nil(t, got.Temperature)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
}

func TestClient_Complete_APIError(t *testing.T) {
	var got capturedRequest
	srv := newServer(t, http.StatusInternalServerError,
		`{"error": {"message": "upstream exploded", "type": "server_error"}}`, &got)

	c := NewClient("test-key", Options{BaseURL: srv.URL + "/v1"})
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	var got capturedRequest
	srv := newServer(t, http.StatusOK, `{"id": "x", "object": "chat.completion", "choices": []}`, &got)

	c := NewClient("test-key", Options{BaseURL: srv.URL + "/v1"})
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestIsReasoningModel(t *testing.T) {
	assert.True(t, isReasoningModel("o1-preview"))
	assert.True(t, isReasoningModel("gpt-5-mini"))
	assert.False(t, isReasoningModel("gpt-4"))
	assert.False(t, isReasoningModel("gpt-4o"))
}
