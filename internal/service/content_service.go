package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
)

// ContentService owns the GeneratedContent/Post state machine:
// DRAFT -> SCHEDULED, with cancellation returning to DRAFT. Invariant under
// every operation: exactly one live Post per SCHEDULED content, zero Posts
// per DRAFT content.
type ContentService interface {
	SaveContent(ctx context.Context, itemID int64, mediaType, url string, platforms []string, script string) ([]*models.GeneratedContent, error)
	SchedulePost(ctx context.Context, contentIDs []int64, scheduledTimeISO string) ([]int64, time.Duration, error)
	CancelPost(ctx context.Context, postID int64) error
	UpdateScript(ctx context.Context, contentID int64, script string) error
	UpdateMedia(ctx context.Context, contentID int64, url string) error
	ListByItem(ctx context.Context, itemID int64) ([]*models.GeneratedContent, error)
}

type contentService struct {
	cr repository.ContentRepository
	pr repository.PostRepository
	ir repository.ItemRepository
}

func NewContentService(cr repository.ContentRepository, pr repository.PostRepository, ir repository.ItemRepository) ContentService {
	return &contentService{cr: cr, pr: pr, ir: ir}
}

// SaveContent is the only creation path for content: one DRAFT row per
// requested platform, all sharing the rendered url, type and script. The
// script is written to its own column and mirrored into the metrics blob so
// readers of the old layout keep working.
func (s *contentService) SaveContent(ctx context.Context, itemID int64, mediaType, url string, platforms []string, script string) ([]*models.GeneratedContent, error) {
	if len(platforms) == 0 {
		err := errors.New("no platforms selected")
		slog.Info(err.Error())
		return nil, err
	}

	item, err := s.ir.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}

	metrics := models.EncodeMetrics(models.ContentMetrics{Script: script})

	var created []*models.GeneratedContent
	for _, platform := range platforms {
		content := &models.GeneratedContent{
			ItemID:   itemID,
			Type:     mediaType,
			URL:      url,
			Platform: platform,
			Script:   script,
			Status:   models.ContentStatusDraft,
			Metrics:  metrics,
		}
		id, err := s.cr.Create(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("error saving content for %s: %w", platform, err)
		}
		content.ID = id
		created = append(created, content)
	}

	return created, nil
}

// SchedulePost creates one Post per content id at the given time and flips
// each content to SCHEDULED. It returns the created post ids and the delay
// until the scheduled time for delivery enqueueing. Nothing guards against
// scheduling the same content twice; the store is the arbiter.
func (s *contentService) SchedulePost(ctx context.Context, contentIDs []int64, scheduledTimeISO string) ([]int64, time.Duration, error) {
	if len(contentIDs) == 0 {
		err := errors.New("no content ids provided")
		slog.Info(err.Error())
		return nil, 0, err
	}

	scheduledTime, err := time.Parse(time.RFC3339, scheduledTimeISO)
	if err != nil {
		err = fmt.Errorf("invalid scheduled time format: %w", err)
		slog.Info(err.Error())
		return nil, 0, err
	}

	for _, id := range contentIDs {
		content, err := s.cr.GetByID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		if content == nil {
			return nil, 0, fmt.Errorf("%w: content %d", ErrNotFound, id)
		}
	}

	var postIDs []int64
	for _, id := range contentIDs {
		post := &models.Post{
			ContentID:     id,
			ScheduledTime: scheduledTime,
			Status:        models.PostStatusScheduled,
		}
		postID, err := s.pr.Create(ctx, post)
		if err != nil {
			return nil, 0, fmt.Errorf("error creating post for content %d: %w", id, err)
		}
		if err := s.cr.UpdateStatus(ctx, models.ContentStatusScheduled, id); err != nil {
			return nil, 0, fmt.Errorf("error updating content %d status: %w", id, err)
		}
		postIDs = append(postIDs, postID)
	}

	delay := time.Until(scheduledTime)
	if delay < 0 {
		delay = 0
	}
	return postIDs, delay, nil
}

// CancelPost deletes the Post and resets its content to DRAFT. An unknown
// post id aborts before any mutation.
func (s *contentService) CancelPost(ctx context.Context, postID int64) error {
	post, err := s.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		err = fmt.Errorf("%w: post %d", ErrNotFound, postID)
		slog.Info(err.Error())
		return err
	}

	if err := s.pr.Remove(ctx, postID); err != nil {
		return fmt.Errorf("error removing post %d: %w", postID, err)
	}
	if err := s.cr.UpdateStatus(ctx, models.ContentStatusDraft, post.ContentID); err != nil {
		return fmt.Errorf("error resetting content %d to draft: %w", post.ContentID, err)
	}
	return nil
}

// UpdateScript overwrites the script on an existing content row. No status
// transition is implied. The metrics blob is re-encoded with the new script
// while keeping any analytics counters already stored there.
func (s *contentService) UpdateScript(ctx context.Context, contentID int64, script string) error {
	content, err := s.cr.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("%w: content %d", ErrNotFound, contentID)
	}

	metrics := models.DecodeMetrics(content.Metrics)
	metrics.Script = script
	return s.cr.UpdateScript(ctx, script, models.EncodeMetrics(metrics), contentID)
}

func (s *contentService) UpdateMedia(ctx context.Context, contentID int64, url string) error {
	content, err := s.cr.GetByID(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return fmt.Errorf("%w: content %d", ErrNotFound, contentID)
	}
	return s.cr.UpdateURL(ctx, url, contentID)
}

func (s *contentService) ListByItem(ctx context.Context, itemID int64) ([]*models.GeneratedContent, error) {
	return s.cr.ListByItemID(ctx, itemID)
}
