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
	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// Queue identities on the media-generation service. A request id does not
// carry its queue, so status checks probe the candidates in order.
const (
	QueueTextToVideo  = "fal-ai/krea-wan-14b/text-to-video"
	QueueKlingVideo   = "fal-ai/kling-video/v1/standard/text-to-video"
	QueueImageToVideo = "fal-ai/kling-video/v1/standard/image-to-video"
	QueueImage        = "fal-ai/flux/krea"
)

// candidateQueues is the probe order for resolving an unknown request id.
var candidateQueues = []string{QueueTextToVideo, QueueKlingVideo, QueueImageToVideo}

// imageDimensions quantizes the supported aspect ratios to explicit pixel
// pairs around 1MP.
var imageDimensions = map[string]transfer.ImageSize{
	"16:9": {Width: 1344, Height: 768},
	"9:16": {Width: 768, Height: 1344},
	"1:1":  {Width: 1024, Height: 1024},
}

const (
	videoAspectRatio = "9:16"
	videoDuration    = 5
	imageSteps       = 28
	imageGuidance    = 3.5
)

// RenderService drives asynchronous media-generation jobs on the external
// queue service: submit returns an opaque request id, CheckStatus resolves
// it to a normalized state, Await polls at a fixed interval until terminal.
type RenderService interface {
	SubmitVideo(ctx context.Context, prompt, seedImageURL string) (string, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error)
	CheckStatus(ctx context.Context, requestID string) (*transfer.RenderStatus, error)
	Await(ctx context.Context, requestID string) (string, error)
}

type renderService struct {
	config cfg.Config
	client *http.Client
}

func NewRenderService(config cfg.Config) RenderService {
	return &renderService{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SubmitVideo picks the render path from the seed image alone: a persona
// avatar url selects the image-seeded queue, otherwise the text-seeded one.
func (s *renderService) SubmitVideo(ctx context.Context, prompt, seedImageURL string) (string, error) {
	queueID := QueueTextToVideo
	input := transfer.VideoJobInput{
		Prompt:      prompt,
		AspectRatio: videoAspectRatio,
		Duration:    videoDuration,
	}
	if seedImageURL != "" {
		queueID = QueueImageToVideo
		input.ImageURL = seedImageURL
	}

	slog.Info("submitting video job", "queue", queueID)
	return s.submit(ctx, queueID, input)
}

// GenerateImage is synchronous from the caller's point of view: the image
// queue is fast enough to submit and poll inline until the job settles.
func (s *renderService) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	size, ok := imageDimensions[aspectRatio]
	if !ok {
		size = imageDimensions["16:9"]
	}

	input := transfer.ImageJobInput{
		Prompt:            prompt,
		ImageSize:         size,
		NumInferenceSteps: imageSteps,
		GuidanceScale:     imageGuidance,
	}

	requestID, err := s.submit(ctx, QueueImage, input)
	if err != nil {
		return "", err
	}

	ticker := time.NewTicker(s.pollInterval())
	defer ticker.Stop()

	for {
		status, err := s.status(ctx, QueueImage, requestID)
		if err != nil {
			return "", fmt.Errorf("%w: image status check: %v", ErrUpstream, err)
		}
		switch normalizeState(status.Status) {
		case transfer.JobStateCompleted:
			envelope, err := s.result(ctx, QueueImage, requestID)
			if err != nil {
				return "", fmt.Errorf("%w: fetching image result: %v", ErrUpstream, err)
			}
			url := envelope.ImageURL()
			if url == "" {
				return "", fmt.Errorf("%w: no image returned", ErrUpstream)
			}
			return url, nil
		case transfer.JobStateFailed, transfer.JobStateCancelled:
			return "", fmt.Errorf("%w: image generation %s", ErrUpstream, strings.ToLower(status.Status))
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// CheckStatus probes the candidate queues in order for the given request id.
// A probe failure means "wrong queue", not an error: it is swallowed and the
// next candidate is tried. The first queue that recognizes the id wins. On
// COMPLETED the terminal payload is fetched and the asset url extracted from
// whichever envelope shape the service used.
func (s *renderService) CheckStatus(ctx context.Context, requestID string) (*transfer.RenderStatus, error) {
	for _, queueID := range candidateQueues {
		status, err := s.status(ctx, queueID, requestID)
		if err != nil {
			continue
		}

		state := normalizeState(status.Status)
		if state != transfer.JobStateCompleted {
			return &transfer.RenderStatus{State: state}, nil
		}

		envelope, err := s.result(ctx, queueID, requestID)
		if err != nil {
			return nil, fmt.Errorf("%w: fetching result: %v", ErrUpstream, err)
		}
		url := envelope.AssetURL()
		if url == "" {
			slog.Error("job completed but no url found in payload", "request_id", requestID, "queue", queueID)
			return nil, fmt.Errorf("%w: completed but no URL returned", ErrUpstream)
		}
		return &transfer.RenderStatus{State: transfer.JobStateCompleted, URL: url}, nil
	}

	return nil, fmt.Errorf("%w in any queue: %s", ErrJobNotFound, requestID)
}

// Await re-checks the job at a fixed interval until a terminal state. There
// is deliberately no hard timeout: cancellation comes from ctx, and a FAILED
// job is never retried here.
func (s *renderService) Await(ctx context.Context, requestID string) (string, error) {
	ticker := time.NewTicker(s.pollInterval())
	defer ticker.Stop()

	for {
		status, err := s.CheckStatus(ctx, requestID)
		if err != nil {
			return "", err
		}

		switch status.State {
		case transfer.JobStateCompleted:
			return status.URL, nil
		case transfer.JobStateFailed, transfer.JobStateCancelled:
			return "", fmt.Errorf("%w: render job %s", ErrUpstream, strings.ToLower(status.State))
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *renderService) pollInterval() time.Duration {
	if s.config.MediaQueue.PollInterval > 0 {
		return s.config.MediaQueue.PollInterval
	}
	return 4 * time.Second
}

func (s *renderService) submit(ctx context.Context, queueID string, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.queueURL(queueID), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error(err.Error())
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading submit response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("%w: submit status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var submitResp transfer.QueueSubmitResponse
	if err := json.Unmarshal(body, &submitResp); err != nil {
		return "", fmt.Errorf("%w: decoding submit response: %v", ErrUpstream, err)
	}
	if submitResp.RequestID == "" {
		return "", fmt.Errorf("%w: submit returned no request id", ErrUpstream)
	}
	return submitResp.RequestID, nil
}

func (s *renderService) status(ctx context.Context, queueID, requestID string) (*transfer.QueueStatusResponse, error) {
	url := s.queueURL(queueID) + "/requests/" + requestID + "/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("queue %s does not recognize request %s (status %d)", queueID, requestID, resp.StatusCode)
	}

	var status transfer.QueueStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *renderService) result(ctx context.Context, queueID, requestID string) (*transfer.ResultEnvelope, error) {
	url := s.queueURL(queueID) + "/requests/" + requestID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("result status %d: %s", resp.StatusCode, string(body))
	}

	var envelope transfer.ResultEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

func (s *renderService) queueURL(queueID string) string {
	return strings.TrimSuffix(s.config.MediaQueue.BaseURL, "/") + "/" + queueID
}

func (s *renderService) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Key "+s.config.MediaQueue.APIKey)
	req.Header.Set("Content-Type", "application/json")
}

func normalizeState(raw string) string {
	switch strings.ToUpper(raw) {
	case "IN_QUEUE", "QUEUED":
		return transfer.JobStateQueued
	case "IN_PROGRESS":
		return transfer.JobStateInProgress
	case "COMPLETED", "OK":
		return transfer.JobStateCompleted
	case "FAILED", "ERROR":
		return transfer.JobStateFailed
	case "CANCELLED", "CANCELED":
		return transfer.JobStateCancelled
	}
	return strings.ToUpper(raw)
}

// SeedImageForPersona returns the seed image for persona-continuity video
// renders: the avatar when one is registered, otherwise "" which routes the
// job to the text-seeded queue.
func SeedImageForPersona(persona *models.Persona) string {
	if persona == nil {
		return ""
	}
	return persona.AvatarURL
}
