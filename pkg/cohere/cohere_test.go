package cohere_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planning-assistant/pkg/cohere"
)

func TestNew(t *testing.T) {
	_, err := cohere.New(cohere.Config{})
	assert.Error(t, err)

	client, err := cohere.New(cohere.Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, cohere.DefaultModel, client.Model())
}

func TestGenerate(t *testing.T) {
	var body map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate" || r.Header.Get("Authorization") != "Bearer k" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "invalid api token"}`))
			return
		}
		body = nil
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["prompt"] == "nothing" {
			w.Write([]byte(`{"id": "g", "generations": []}`))
			return
		}
		w.Write([]byte(`{"id": "g1", "generations": [{"id": "a", "text": "  Book a hall\n", "finish_reason": "COMPLETE"}]}`))
	}))
	defer ts.Close()

	client, err := cohere.New(cohere.Config{APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	t.Run("returns first generation and applies defaults", func(t *testing.T) {
		resp, err := client.Generate(context.Background(), &cohere.Request{Prompt: "tasks", Temperature: 0.7})

		require.NoError(t, err)
		assert.Equal(t, "  Book a hall\n", resp.Text)
		assert.Equal(t, "command-r-plus", body["model"])
		assert.EqualValues(t, cohere.DefaultMaxTokens, body["max_tokens"])
	})

	t.Run("empty generations", func(t *testing.T) {
		_, err := client.Generate(context.Background(), &cohere.Request{Prompt: "nothing"})
		assert.Error(t, err)
	})

	t.Run("api error", func(t *testing.T) {
		bad, err := cohere.New(cohere.Config{APIKey: "other", BaseURL: ts.URL})
		require.NoError(t, err)

		_, err = bad.Generate(context.Background(), &cohere.Request{Prompt: "tasks"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api token")
	})

	t.Run("blank prompt", func(t *testing.T) {
		_, err := client.Generate(context.Background(), &cohere.Request{Prompt: " "})
		assert.Error(t, err)
	})
}
