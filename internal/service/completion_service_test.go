package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/tarnowskisean-beep/cook-book/configs"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

func completionConfig(baseURL string) cfg.Config {
	return cfg.Config{
		Completion: cfg.Completion{
			BaseURL:     baseURL,
			APIKey:      "test-key",
			Model:       "gpt-4o",
			Temperature: 0.8,
		},
	}
}

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotReq transfer.ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(transfer.ChatCompletionResponse{
			Choices: []transfer.ChatChoice{
				{Message: transfer.ChatMessage{Role: "assistant", Content: "a viral script"}},
			},
		})
	}))
	defer srv.Close()

	svc := NewCompletionService(completionConfig(srv.URL))
	out, err := svc.Complete(context.Background(), "system", "user", transfer.CompletionOptions{})
	require.NoError(t, err)

	assert.Equal(t, "a viral script", out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Nil(t, gotReq.ResponseFormat)
}

func TestCompleteJSONModeRequestsJSONObject(t *testing.T) {
	var gotReq transfer.ChatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(transfer.ChatCompletionResponse{
			Choices: []transfer.ChatChoice{
				{Message: transfer.ChatMessage{Content: `{"prompt":"p","caption":"c"}`}},
			},
		})
	}))
	defer srv.Close()

	svc := NewCompletionService(completionConfig(srv.URL))
	_, err := svc.Complete(context.Background(), "s", "u", transfer.CompletionOptions{JSONMode: true})
	require.NoError(t, err)

	require.NotNil(t, gotReq.ResponseFormat)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
}

func TestCompleteUpstreamFailures(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc := NewCompletionService(completionConfig(srv.URL))
		_, err := svc.Complete(context.Background(), "s", "u", transfer.CompletionOptions{})
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("error payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(transfer.ChatCompletionResponse{
				Error: &transfer.CompletionError{Message: "rate limited", Type: "rate_limit"},
			})
		}))
		defer srv.Close()

		svc := NewCompletionService(completionConfig(srv.URL))
		_, err := svc.Complete(context.Background(), "s", "u", transfer.CompletionOptions{})
		assert.ErrorIs(t, err, ErrUpstream)
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(transfer.ChatCompletionResponse{})
		}))
		defer srv.Close()

		svc := NewCompletionService(completionConfig(srv.URL))
		_, err := svc.Complete(context.Background(), "s", "u", transfer.CompletionOptions{})
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestParseMediaPrompt(t *testing.T) {
	mp := ParseMediaPrompt(`{"prompt":"golden pasta","caption":"dinner is served"}`)
	assert.Equal(t, "golden pasta", mp.Prompt)
	assert.Equal(t, "dinner is served", mp.Caption)

	fenced := ParseMediaPrompt("```json\n{\"prompt\":\"p\",\"caption\":\"c\"}\n```")
	assert.Equal(t, "p", fenced.Prompt)

	malformed := ParseMediaPrompt("sorry, here is your prompt: golden pasta")
	assert.Empty(t, malformed.Prompt)
	assert.Empty(t, malformed.Caption)
}
