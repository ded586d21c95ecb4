package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return openai.NewClient(
		option.WithAPIKey("sk-test"),
		option.WithBaseURL(srv.URL+"/"),
		option.WithMaxRetries(0),
	)
}

func TestOpenAICompleter_Complete(t *testing.T) {
	var captured map[string]any
	var rawBody string
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		rawBody = string(body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"sentiment\":\"NEGATIVE\",\"key_topics\":[\"delivery\"],\"urgency_level\":\"HIGH\"}"}
			}]
		}`))
	})

	completer := NewOpenAICompleter(client, "")
	completion, err := completer.Complete(context.Background(), "analyze this")
	require.NoError(t, err)

	assert.Equal(t, `{"sentiment":"NEGATIVE","key_topics":["delivery"],"urgency_level":"HIGH"}`, completion)
	assert.Equal(t, "gpt-4o-mini", completer.ModelID())
	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.Equal(t, float64(500), captured["max_tokens"])
	assert.Equal(t, 0.1, captured["temperature"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
	assert.Contains(t, rawBody, "analyze this")
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini","choices":[]}`))
	})

	_, err := NewOpenAICompleter(client, "gpt-4o-mini").Complete(context.Background(), "analyze this")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestOpenAICompleter_APIError(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad request","type":"invalid_request_error"}}`))
	})

	_, err := NewOpenAICompleter(client, "gpt-4o-mini").Complete(context.Background(), "analyze this")
	require.Error(t, err)

	var apiErr *openai.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
