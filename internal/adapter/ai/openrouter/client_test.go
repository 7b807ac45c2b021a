package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chudy3122/doradca-ai/internal/config"
	"github.com/Chudy3122/doradca-ai/internal/domain"
)

func testClient(baseURL string) *Client {
	return New(config.Config{
		AppEnv:            "test",
		OpenRouterAPIKey:  "test-key",
		OpenRouterBaseURL: baseURL,
		OpenRouterModel:   "openai/gpt-4o-mini",
		ChatTimeout:       2 * time.Second,
	})
}

func TestChat_Success(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "Witaj!"}}},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	reply, err := c.Chat(context.Background(), "Jesteś doradcą.", []domain.ChatMessage{
		{Role: "user", Content: "Cześć"},
	}, 256)
	require.NoError(t, err)
	assert.Equal(t, "Witaj!", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.NotEmpty(t, gotReq.Messages)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, 256, gotReq.MaxTokens)
}

func TestChat_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat(context.Background(), "p", nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestChat_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Chat(context.Background(), "p", nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
}

func TestChat_MissingKey(t *testing.T) {
	c := New(config.Config{AppEnv: "test"})
	_, err := c.Chat(context.Background(), "p", nil, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRefreshCatalog_AndModelFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "meta/llama-3"}, {"id": "openai/gpt-4o-mini"}},
		})
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	require.NoError(t, c.RefreshCatalog(context.Background()))
	assert.Equal(t, "openai/gpt-4o-mini", c.Model())

	// A configured model absent from the catalog is still honored.
	c.cfg.OpenRouterModel = "some/custom-model"
	assert.Equal(t, "some/custom-model", c.Model())
}
