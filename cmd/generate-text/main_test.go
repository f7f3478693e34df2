package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/ai-core-examples/pkg/config"
	"github.com/dskvich/ai-core-examples/pkg/demo"
	"github.com/dskvich/ai-core-examples/pkg/openai"
)

const description = "A cartoon cat in a cape stands on a rooftop.\nThe city glows behind it."

func setupEnv(t *testing.T) {
	t.Helper()

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_ORGANIZATION", "")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("NO_COLOR", "1")

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

type fakeOpenAI struct {
	mu       sync.Mutex
	requests []map[string]any
}

func (f *fakeOpenAI) factory(t *testing.T, status int, body string) generatorFactory {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			f.mu.Lock()
			f.requests = append(f.requests, req)
			f.mu.Unlock()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return func(cfg config.Config) demo.TextGenerator {
		return openai.NewClient(openai.Config{APIKey: cfg.OpenAIAPIKey, BaseURL: srv.URL + "/v1"})
	}
}

func (f *fakeOpenAI) recorded() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests
}

func chatCompletion(t *testing.T, content string) string {
	t.Helper()

	b, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   demo.ImageModel,
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 800, "completion_tokens": 20, "total_tokens": 820},
	})
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	setupEnv(t)
	fake := &fakeOpenAI{}
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), &stdout, &stderr, fake.factory(t, http.StatusOK, chatCompletion(t, description)))

	assert.Equal(t, 0, code)
	assert.Equal(t, description+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "generate-text INFO")

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.EqualValues(t, demo.ImageMaxTokens, requests[0]["max_tokens"])
	assert.Equal(t, demo.ImageModel, requests[0]["model"])
}

func TestRunFailure(t *testing.T) {
	setupEnv(t)
	fake := &fakeOpenAI{}
	var stdout, stderr bytes.Buffer
	body := `{"error":{"message":"The model does not exist","type":"invalid_request_error","code":"model_not_found"}}`

	code := run(context.Background(), &stdout, &stderr, fake.factory(t, http.StatusNotFound, body))

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "generate-text ERROR")
	assert.Contains(t, stderr.String(), "kind=provider")
	assert.Len(t, fake.recorded(), 1)
}
