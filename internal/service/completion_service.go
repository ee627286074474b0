package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	cfg "github.com/tarnowskisean-beep/cook-book/configs"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type CompletionService interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts transfer.CompletionOptions) (string, error)
}

type completionService struct {
	config cfg.Config
	client *http.Client
}

func NewCompletionService(config cfg.Config) CompletionService {
	return &completionService{
		config: config,
		client: &http.Client{Timeout: 2 * time.Minute},
	}
}

func (s *completionService) Complete(ctx context.Context, systemPrompt, userPrompt string, opts transfer.CompletionOptions) (string, error) {
	reqBody := transfer.ChatCompletionRequest{
		Model: s.config.Completion.Model,
		Messages: []transfer.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: s.config.Completion.Temperature,
	}
	if opts.JSONMode {
		reqBody.ResponseFormat = &transfer.ResponseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := strings.TrimSuffix(s.config.Completion.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.config.Completion.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error(err.Error())
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading completion response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Error("completion request failed", "status", resp.StatusCode)
		return "", fmt.Errorf("%w: completion status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var completion transfer.ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: decoding completion response: %v", ErrUpstream, err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", ErrUpstream)
	}

	return completion.Choices[0].Message.Content, nil
}

// ParseMediaPrompt decodes the jsonMode response into its prompt/caption
// pair. Malformed or absent JSON yields empty strings, never an error: the
// caller branches on empty rather than unwinding.
func ParseMediaPrompt(raw string) transfer.MediaPrompt {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	var mp transfer.MediaPrompt
	if err := json.Unmarshal([]byte(trimmed), &mp); err != nil {
		slog.Info("media prompt response was not valid JSON, falling back to empty fields")
		return transfer.MediaPrompt{}
	}
	return mp
}
