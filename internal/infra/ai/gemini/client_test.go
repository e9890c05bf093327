package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		assert.Contains(t, r.URL.Path, "gemini-test:generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"doctor\": 9, \"nurse\": 3, \"hospital\": 5, \"notes\": \"ok\"}"}]}, "finishReason": "STOP"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "test-key", "gemini-test", srv.URL)
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "score the feedback", "the nurse was rude")
	require.NoError(t, err)
	assert.JSONEq(t, `{"doctor": 9, "nurse": 3, "hospital": 5, "notes": "ok"}`, reply)

	assert.True(t, strings.Contains(body, "the nurse was rude"))
	assert.True(t, strings.Contains(body, "score the feedback"))
	assert.True(t, strings.Contains(body, "application/json"))
}

func TestClient_Complete_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "backend down", "status": "INTERNAL"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), "test-key", "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, defaultModel, c.Model)

	_, err = c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generate content")
}
