package job

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

// MetricsRefreshJob periodically pulls engagement metrics for delivered
// posts and folds them into the content metrics blob. The script stored in
// the blob survives every refresh.
type MetricsRefreshJob struct {
	phr repository.PostingHistoryRepository
	cr  repository.ContentRepository
	ss  service.SocialService
}

func NewMetricsRefreshJob(
	phr repository.PostingHistoryRepository,
	cr repository.ContentRepository,
	ss service.SocialService) *MetricsRefreshJob {
	return &MetricsRefreshJob{
		phr: phr,
		cr:  cr,
		ss:  ss,
	}
}

func (j *MetricsRefreshJob) RefreshMetrics() {
	ctx := context.Background()

	delivered, err := j.phr.ListDelivered(ctx)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, history := range delivered {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(history *models.PostingHistory) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := j.refreshOne(ctx, history); err != nil {
				slog.Info("Unable to refresh metrics", "content_id", history.ContentID, "error", err)
			}
		}(history)
	}

	wg.Wait()
}

func (j *MetricsRefreshJob) refreshOne(ctx context.Context, history *models.PostingHistory) error {
	content, err := j.cr.GetByID(ctx, history.ContentID)
	if err != nil {
		return err
	}
	if content == nil {
		return nil
	}

	stats, err := j.ss.FetchMetrics(ctx, history.PlatformPostID)
	if err != nil {
		return err
	}

	metrics := models.DecodeMetrics(content.Metrics)
	if metrics.Script == "" {
		metrics.Script = content.Script
	}
	metrics.Views = stats.Views
	metrics.Likes = stats.Likes
	metrics.Comments = stats.Comments
	metrics.Shares = stats.Shares

	return j.cr.UpdateMetrics(ctx, models.EncodeMetrics(metrics), content.ID)
}
