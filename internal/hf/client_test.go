// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package hf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatai/internal/model"
)

func completionResponse(content string) string {
	resp := map[string]any{
		"id":    "cmpl-1",
		"model": DefaultModel,
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestCompleteSuccess(t *testing.T) {
	var captured ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(completionResponse("Hi there")))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	text, err := client.Complete(context.Background(), "Hello there", "", model.History{})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", text)

	assert.Equal(t, DefaultModel, captured.Model)
	assert.Equal(t, DefaultMaxTokens, captured.MaxTokens)
	assert.False(t, captured.Stream)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
	assert.Equal(t, "Hello there", captured.Messages[0].Content)
}

func TestCompleteWithMaxTokens(t *testing.T) {
	var captured ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(completionResponse("ok")))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithMaxTokens(120))

	_, err := client.Complete(context.Background(), "hi", "", model.History{})
	require.NoError(t, err)
	assert.Equal(t, 120, captured.MaxTokens)

	// Non-positive values are ignored and the default stays in effect.
	captured = ChatRequest{}
	client = NewClient("test-key", WithBaseURL(server.URL), WithMaxTokens(0))
	_, err = client.Complete(context.Background(), "hi", "", model.History{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTokens, captured.MaxTokens)
}

func TestCompleteInterleavesHistory(t *testing.T) {
	var captured ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(completionResponse("ok")))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	history := model.History{
		PastUserInputs:     []string{"q1", "q2"},
		GeneratedResponses: []string{"a1", ""},
	}

	_, err := client.Complete(context.Background(), "q3", "some/model", history)
	require.NoError(t, err)

	assert.Equal(t, "some/model", captured.Model)

	// q2's slot is empty so no assistant turn is emitted for it.
	want := []ChatMessage{
		{Role: "user", Content: "q1"},
		{Role: "assistant", Content: "a1"},
		{Role: "user", Content: "q2"},
		{Role: "user", Content: "q3"},
	}
	assert.Equal(t, want, captured.Messages)
}

func TestCompleteEmptyContentFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("")))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	text, err := client.Complete(context.Background(), "hi", "", model.History{})
	require.NoError(t, err)
	assert.Equal(t, NoResponseFallback, text)
}

func TestCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("too many requests"))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Complete(context.Background(), "hi", "", model.History{})
	require.Error(t, err)
	assert.Equal(t, "API error 429: too many requests", err.Error())
}

func TestCompleteHTTPErrorEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Complete(context.Background(), "hi", "", model.History{})
	require.Error(t, err)
	assert.Equal(t, "API error 503: Service Unavailable", err.Error())
}

func TestCompleteNotConfigured(t *testing.T) {
	client := NewClient("")
	_, err := client.Complete(context.Background(), "hi", "", model.History{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	placeholder := NewClient("your_actual_huggingface_api_key")
	_, err = placeholder.Complete(context.Background(), "hi", "", model.History{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestIsKeyConfigured(t *testing.T) {
	assert.False(t, IsKeyConfigured(""))
	assert.False(t, IsKeyConfigured("   "))
	assert.False(t, IsKeyConfigured("hf_your_actual_huggingface_api_key"))
	assert.True(t, IsKeyConfigured("hf_real_key"))
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvToken, "hf_from_token")
	assert.Equal(t, "hf_from_token", ResolveAPIKey())

	t.Setenv(EnvAPIKey, "hf_primary")
	assert.Equal(t, "hf_primary", ResolveAPIKey())

	t.Setenv(EnvAPIKey, "your_actual_huggingface_api_key")
	assert.Equal(t, "hf_from_token", ResolveAPIKey())
}
