package copilot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIAskerSendsChatCompletion(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "generated docs"}},
			},
		})
	}))
	defer srv.Close()

	asker := NewAPIAsker(srv.URL, "gpt-4o", "test-token", 5*time.Second)
	out, err := asker.Ask(context.Background(), "explain this controller")
	require.NoError(t, err)
	assert.Equal(t, "generated docs", out)

	assert.Equal(t, "gpt-4o", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "technical documentation expert")
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "explain this controller", got.Messages[1].Content)
	assert.Equal(t, 2000, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)
}

func TestAPIAskerReportsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	asker := NewAPIAsker(srv.URL, "gpt-4o", "test-token", 5*time.Second)
	_, err := asker.Ask(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestAPIAskerEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	asker := NewAPIAsker(srv.URL, "gpt-4o", "test-token", 5*time.Second)
	_, err := asker.Ask(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestAPIAskerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	asker := NewAPIAsker(srv.URL, "gpt-4o", "test-token", 50*time.Millisecond)
	_, err := asker.Ask(context.Background(), "prompt")
	require.Error(t, err)
}
