package job

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type fakeHistoryRepo struct {
	delivered []*models.PostingHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, history *models.PostingHistory) (int64, error) {
	r.delivered = append(r.delivered, history)
	return int64(len(r.delivered)), nil
}

func (r *fakeHistoryRepo) ListDelivered(_ context.Context) ([]*models.PostingHistory, error) {
	return r.delivered, nil
}

type fakeContentRepo struct {
	contents map[int64]*models.GeneratedContent
}

func (r *fakeContentRepo) GetByID(_ context.Context, id int64) (*models.GeneratedContent, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeContentRepo) ListByItemID(_ context.Context, itemID int64) ([]*models.GeneratedContent, error) {
	return nil, nil
}
func (r *fakeContentRepo) Create(_ context.Context, content *models.GeneratedContent) (int64, error) {
	return 0, nil
}
func (r *fakeContentRepo) UpdateStatus(_ context.Context, status string, id int64) error { return nil }
func (r *fakeContentRepo) UpdateScript(_ context.Context, script, metrics string, id int64) error {
	return nil
}
func (r *fakeContentRepo) UpdateURL(_ context.Context, url string, id int64) error { return nil }
func (r *fakeContentRepo) UpdateMetrics(_ context.Context, metrics string, id int64) error {
	if c, ok := r.contents[id]; ok {
		c.Metrics = metrics
	}
	return nil
}

type fakeSocial struct {
	metrics transfer.SocialMetrics
}

func (s *fakeSocial) PublishPost(_ context.Context, platform, contentURL, caption string) (string, error) {
	return "", nil
}

func (s *fakeSocial) FetchMetrics(_ context.Context, platformPostID string) (*transfer.SocialMetrics, error) {
	m := s.metrics
	return &m, nil
}

func TestRefreshMetricsMergesCountersAndKeepsScript(t *testing.T) {
	phr := &fakeHistoryRepo{delivered: []*models.PostingHistory{
		{ID: 1, PostID: 1, ContentID: 10, PlatformPostID: "tiktok_post_abc", CreatedAt: time.Now()},
	}}
	cr := &fakeContentRepo{contents: map[int64]*models.GeneratedContent{
		10: {
			ID:      10,
			Script:  "the script",
			Metrics: models.EncodeMetrics(models.ContentMetrics{Script: "the script"}),
		},
	}}
	ss := &fakeSocial{metrics: transfer.SocialMetrics{Views: 4200, Likes: 310, Comments: 12, Shares: 45}}

	job := NewMetricsRefreshJob(phr, cr, ss)
	job.RefreshMetrics()

	merged := models.DecodeMetrics(cr.contents[10].Metrics)
	assert.Equal(t, "the script", merged.Script)
	assert.Equal(t, int64(4200), merged.Views)
	assert.Equal(t, int64(310), merged.Likes)
	assert.Equal(t, int64(12), merged.Comments)
	assert.Equal(t, int64(45), merged.Shares)
}

func TestRefreshMetricsSkipsMissingContent(t *testing.T) {
	phr := &fakeHistoryRepo{delivered: []*models.PostingHistory{
		{ID: 1, ContentID: 99, PlatformPostID: "gone"},
	}}
	cr := &fakeContentRepo{contents: map[int64]*models.GeneratedContent{}}

	job := NewMetricsRefreshJob(phr, cr, &fakeSocial{})
	require.NotPanics(t, job.RefreshMetrics)
	assert.Empty(t, cr.contents)
}
