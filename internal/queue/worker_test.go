package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type fakePostRepo struct {
	posts map[int64]*models.Post
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) (int64, error) { return 0, nil }
func (r *fakePostRepo) Remove(_ context.Context, id int64) error                   { return nil }
func (r *fakePostRepo) ListScheduled(_ context.Context, from, to time.Time) ([]*repository.ScheduledPostRow, error) {
	return nil, nil
}

type fakeContentRepo struct {
	contents map[int64]*models.GeneratedContent
	statuses []string
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
func (r *fakeContentRepo) UpdateStatus(_ context.Context, status string, id int64) error {
	r.statuses = append(r.statuses, status)
	return nil
}
func (r *fakeContentRepo) UpdateScript(_ context.Context, script, metrics string, id int64) error {
	return nil
}
func (r *fakeContentRepo) UpdateURL(_ context.Context, url string, id int64) error { return nil }
func (r *fakeContentRepo) UpdateMetrics(_ context.Context, metrics string, id int64) error {
	return nil
}

type fakeHistoryRepo struct {
	created []*models.PostingHistory
}

func (r *fakeHistoryRepo) Create(_ context.Context, history *models.PostingHistory) (int64, error) {
	clone := *history
	r.created = append(r.created, &clone)
	return int64(len(r.created)), nil
}

func (r *fakeHistoryRepo) ListDelivered(_ context.Context) ([]*models.PostingHistory, error) {
	return r.created, nil
}

type fakeSocial struct {
	postID      string
	err         error
	lastCaption string
}

func (s *fakeSocial) PublishPost(_ context.Context, platform, contentURL, caption string) (string, error) {
	s.lastCaption = caption
	return s.postID, s.err
}

func (s *fakeSocial) FetchMetrics(_ context.Context, platformPostID string) (*transfer.SocialMetrics, error) {
	return &transfer.SocialMetrics{}, nil
}

func deliveryFixture() (*Queue, *fakePostRepo, *fakeContentRepo, *fakeHistoryRepo, *fakeSocial) {
	pr := &fakePostRepo{posts: map[int64]*models.Post{
		1: {ID: 1, ContentID: 10, Status: models.PostStatusScheduled},
	}}
	cr := &fakeContentRepo{contents: map[int64]*models.GeneratedContent{
		10: {
			ID:       10,
			Platform: "TikTok",
			URL:      "https://cdn.example.com/render.mp4",
			Script:   "the script",
			Status:   models.ContentStatusScheduled,
		},
	}}
	phr := &fakeHistoryRepo{}
	ss := &fakeSocial{postID: "tiktok_post_abc"}
	return NewQueue(pr, cr, phr, ss), pr, cr, phr, ss
}

func TestDeliverPostRecordsHistory(t *testing.T) {
	q, _, cr, phr, ss := deliveryFixture()

	require.NoError(t, q.DeliverPost(context.Background(), 1))

	require.Len(t, phr.created, 1)
	entry := phr.created[0]
	assert.Equal(t, int64(1), entry.PostID)
	assert.Equal(t, int64(10), entry.ContentID)
	assert.Equal(t, "TikTok", entry.Platform)
	assert.Equal(t, "tiktok_post_abc", entry.PlatformPostID)
	assert.Empty(t, entry.ErrorMessage)
	assert.Equal(t, "the script", ss.lastCaption)

	// delivery never transitions content status
	assert.Empty(t, cr.statuses)
}

func TestDeliverPostUsesScriptFromMetricsBlob(t *testing.T) {
	q, _, cr, _, ss := deliveryFixture()
	cr.contents[10].Script = ""
	cr.contents[10].Metrics = models.EncodeMetrics(models.ContentMetrics{Script: "legacy script"})

	require.NoError(t, q.DeliverPost(context.Background(), 1))
	assert.Equal(t, "legacy script", ss.lastCaption)
}

func TestDeliverCancelledPostIsDropped(t *testing.T) {
	q, pr, _, phr, _ := deliveryFixture()
	delete(pr.posts, 1)

	require.NoError(t, q.DeliverPost(context.Background(), 1))
	assert.Empty(t, phr.created)
}

func TestDeliverPublishFailureIsRecorded(t *testing.T) {
	q, _, _, phr, ss := deliveryFixture()
	ss.err = errors.New("platform rejected upload")

	require.NoError(t, q.DeliverPost(context.Background(), 1))

	require.Len(t, phr.created, 1)
	assert.Equal(t, "platform rejected upload", phr.created[0].ErrorMessage)
	assert.Empty(t, phr.created[0].PlatformPostID)
}
