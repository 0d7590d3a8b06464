// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hf provides Hugging Face chat completions for chatai.
//
// The Hugging Face router exposes an OpenAI-compatible chat completions
// endpoint that fronts multiple hosted models. This package implements the
// client for communicating with that endpoint.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"chatai/internal/model"
)

// Configuration constants for the Hugging Face API.
const (
	// DefaultBaseURL is the chat completions endpoint of the HF router.
	DefaultBaseURL = "https://router.huggingface.co/v1/chat/completions"

	// DefaultModel is used when no model is selected.
	DefaultModel = "meta-llama/Llama-3.2-1B-Instruct"

	// DefaultMaxTokens caps completion length per request.
	DefaultMaxTokens = 500

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion attacks.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit

	// NoResponseFallback replaces an empty completion so the chat never
	// shows a blank assistant message.
	NoResponseFallback = "No response generated."

	// keyPlaceholder marks a key that was copied from the sample env file
	// and never replaced with a real one.
	keyPlaceholder = "your_actual_huggingface_api_key"
)

// Environment variables checked for the API key, in order.
const (
	EnvAPIKey = "HUGGINGFACE_API_KEY"
	EnvToken  = "HF_TOKEN"
)

// ErrNotConfigured indicates the API key is not set.
var ErrNotConfigured = errors.New("Hugging Face API key not configured")

// =============================================================================
// API KEY RESOLUTION
// =============================================================================

// ResolveAPIKey reads the API key from the environment.
// The key is resolved once at startup and reused for every request;
// it is never re-read per message. A placeholder value counts as unset.
func ResolveAPIKey() string {
	for _, env := range []string{EnvAPIKey, EnvToken} {
		key := strings.TrimSpace(os.Getenv(env))
		if key != "" && !strings.Contains(key, keyPlaceholder) {
			return key
		}
	}
	return ""
}

// IsKeyConfigured reports whether key is usable (non-empty, not the
// sample placeholder).
func IsKeyConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.Contains(key, keyPlaceholder)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage represents a single message in a chat completion request.
type ChatMessage struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // The message content
}

// ChatRequest represents a request to the chat completions endpoint.
type ChatRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
	Stream    bool          `json:"stream"`
}

// ChatResponse represents a response from the chat completions endpoint.
type ChatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// GetContent returns the content of the first choice, or empty string if none.
func (r *ChatResponse) GetContent() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	return ""
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the Hugging Face chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	maxTokens  int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the completions endpoint. Used by tests and
// self-hosted router deployments.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithMaxTokens caps completion length per request. Non-positive values
// keep DefaultMaxTokens.
func WithMaxTokens(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// NewClient creates a client with the given API key.
//
// If the API key is empty or still the sample placeholder, the client is
// created anyway but Complete requests fail with ErrNotConfigured.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    strings.TrimSpace(apiKey),
		baseURL:   DefaultBaseURL,
		maxTokens: DefaultMaxTokens,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		// 2 rps is comfortably under the free-tier limit.
		limiter: rate.NewLimiter(rate.Limit(2), 4),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// IsConfigured reports whether the client holds a usable API key.
func (c *Client) IsConfigured() bool {
	return IsKeyConfigured(c.apiKey)
}

// =============================================================================
// COMPLETIONS
// =============================================================================

// Complete sends a chat message with prior history and returns the
// assistant's reply.
//
// History is interleaved user-first; an assistant turn is only emitted
// when its slot is non-empty, so a failed exchange does not desynchronize
// the transcript. An empty completion is replaced with NoResponseFallback.
func (c *Client) Complete(ctx context.Context, message, modelID string, history model.History) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	if modelID == "" {
		modelID = DefaultModel
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	messages := buildMessages(message, history)

	reqBody := ChatRequest{
		Model:     modelID,
		Messages:  messages,
		MaxTokens: c.maxTokens,
		Stream:    false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, detail)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := chatResp.GetContent()
	if text == "" {
		text = NoResponseFallback
	}

	return text, nil
}

// buildMessages interleaves past turns and appends the new user message.
func buildMessages(message string, history model.History) []ChatMessage {
	messages := make([]ChatMessage, 0, 2*len(history.PastUserInputs)+1)

	for i, input := range history.PastUserInputs {
		messages = append(messages, ChatMessage{Role: "user", Content: input})
		if i < len(history.GeneratedResponses) && history.GeneratedResponses[i] != "" {
			messages = append(messages, ChatMessage{Role: "assistant", Content: history.GeneratedResponses[i]})
		}
	}

	messages = append(messages, ChatMessage{Role: "user", Content: message})

	return messages
}
