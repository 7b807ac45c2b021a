// Package openrouter implements the AI chat port against the OpenRouter API.
package openrouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/Chudy3122/doradca-ai/internal/adapter/observability"
	"github.com/Chudy3122/doradca-ai/internal/config"
	"github.com/Chudy3122/doradca-ai/internal/domain"
)

// Client implements domain.AIClient. The chat call is a single request with
// no retry: a provider failure surfaces directly to the caller. Only the
// background model-catalog refresh retries, with backoff.
type Client struct {
	cfg config.Config
	hc  *http.Client

	mu     sync.RWMutex
	models []string
}

// New constructs a Client with the configured chat timeout.
func New(cfg config.Config) *Client {
	return &Client{cfg: cfg, hc: &http.Client{Timeout: cfg.ChatTimeout}}
}

type chatRequest struct {
	Model       string               `json:"model"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
	Messages    []domain.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Chat calls the chat-completions endpoint once and returns the message text.
func (c *Client) Chat(ctx domain.Context, systemPrompt string, messages []domain.ChatMessage, maxTokens int) (string, error) {
	if c.cfg.OpenRouterAPIKey == "" {
		return "", fmt.Errorf("%w: OPENROUTER_API_KEY missing", domain.ErrInvalidArgument)
	}
	all := make([]domain.ChatMessage, 0, len(messages)+1)
	all = append(all, domain.ChatMessage{Role: "system", Content: systemPrompt})
	all = append(all, messages...)
	body, err := json.Marshal(chatRequest{
		Model:       c.Model(),
		Temperature: 0.7,
		MaxTokens:   maxTokens,
		Messages:    all,
	})
	if err != nil {
		return "", fmt.Errorf("op=openrouter.marshal: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenRouterBaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("op=openrouter.request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.OpenRouterReferer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.OpenRouterReferer)
	}
	if c.cfg.OpenRouterTitle != "" {
		req.Header.Set("X-Title", c.cfg.OpenRouterTitle)
	}
	resp, err := c.hc.Do(req)
	observability.AIRequestsTotal.WithLabelValues("openrouter", "chat").Inc()
	observability.AIRequestDuration.WithLabelValues("openrouter", "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		var ne interface{ Timeout() bool }
		if errors.As(err, &ne) && ne.Timeout() {
			return "", fmt.Errorf("op=openrouter.chat: %w", domain.ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("op=openrouter.chat: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("op=openrouter.read: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		slog.Warn("ai provider rate limited", slog.String("provider", "openrouter"), slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("op=openrouter.chat: %w", domain.ErrRateLimited)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(raw)
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		slog.Error("ai provider non-2xx",
			slog.String("provider", "openrouter"),
			slog.Int("status", resp.StatusCode),
			slog.String("body", snippet))
		return "", fmt.Errorf("op=openrouter.chat: status %d: %w", resp.StatusCode, domain.ErrUpstreamTimeout)
	}
	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("op=openrouter.decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("op=openrouter.chat: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}

// Model returns the configured model, falling back to the first catalog entry
// when the configured one is not listed.
func (c *Client) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.models {
		if m == c.cfg.OpenRouterModel {
			return m
		}
	}
	if c.cfg.OpenRouterModel != "" || len(c.models) == 0 {
		return c.cfg.OpenRouterModel
	}
	return c.models[0]
}

// RefreshCatalog fetches the provider's model list, retrying with backoff.
// Catalog staleness is tolerated; callers run this in the background.
func (c *Client) RefreshCatalog(ctx domain.Context) error {
	maxElapsed, initial, maxInterval, multiplier := c.cfg.CatalogBackoff()
	expo := backoff.NewExponentialBackOff()
	expo.MaxElapsedTime = maxElapsed
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier

	var models []string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.OpenRouterBaseURL+"/models", nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.cfg.OpenRouterAPIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)
		}
		resp, err := c.hc.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("models status %d", resp.StatusCode)
		}
		var out struct {
			Data []struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return err
		}
		models = models[:0]
		for _, m := range out.Data {
			models = append(models, m.ID)
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		return fmt.Errorf("op=openrouter.refresh_catalog: %w", err)
	}
	c.mu.Lock()
	c.models = models
	c.mu.Unlock()
	slog.Info("model catalog refreshed", slog.Int("models", len(models)))
	return nil
}

// RunCatalogRefresher refreshes the catalog periodically until ctx is done.
func (c *Client) RunCatalogRefresher(ctx domain.Context) {
	if c.cfg.ModelCatalogRefresh <= 0 {
		return
	}
	ticker := time.NewTicker(c.cfg.ModelCatalogRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.RefreshCatalog(ctx); err != nil {
				slog.Warn("model catalog refresh failed", slog.Any("error", err))
			}
		}
	}
}
