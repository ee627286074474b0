package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

func contentFixture(t *testing.T) (ContentService, *fakeContentRepo, *fakePostRepo, *fakeItemRepo) {
	t.Helper()
	cr := newFakeContentRepo()
	pr := newFakePostRepo()
	ir := newFakeItemRepo()
	ir.items[1] = &models.Item{ID: 1, ProjectID: 1, Name: "Sunday Gravy"}
	return NewContentService(cr, pr, ir), cr, pr, ir
}

func TestSaveContentCreatesOneDraftPerPlatform(t *testing.T) {
	svc, cr, _, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo,
		"https://cdn.example.com/render.mp4", []string{"TikTok", "Instagram", "YouTube"}, "the script")
	require.NoError(t, err)
	require.Len(t, created, 3)

	platforms := make(map[string]bool)
	for _, c := range created {
		assert.Equal(t, models.ContentStatusDraft, c.Status)
		assert.Equal(t, "https://cdn.example.com/render.mp4", c.URL)
		assert.Equal(t, "the script", c.Script)
		assert.Equal(t, "the script", models.DecodeMetrics(c.Metrics).Script)
		platforms[c.Platform] = true
	}
	assert.Len(t, platforms, 3)
	assert.Len(t, cr.contents, 3)
}

func TestSaveContentRejectsEmptyPlatforms(t *testing.T) {
	svc, cr, _, _ := contentFixture(t)

	_, err := svc.SaveContent(context.Background(), 1, models.MediaTypeImage, "u", nil, "s")
	assert.Error(t, err)
	assert.Empty(t, cr.contents)
}

func TestSaveContentUnknownItem(t *testing.T) {
	svc, cr, _, _ := contentFixture(t)

	_, err := svc.SaveContent(context.Background(), 42, models.MediaTypeImage, "u", []string{"TikTok"}, "s")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, cr.contents)
}

func TestSchedulePostFlipsContentAndCreatesPosts(t *testing.T) {
	svc, cr, pr, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo,
		"u", []string{"TikTok", "Instagram"}, "s")
	require.NoError(t, err)

	when := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
	postIDs, delay, err := svc.SchedulePost(context.Background(), []int64{created[0].ID, created[1].ID}, when)
	require.NoError(t, err)
	require.Len(t, postIDs, 2)
	assert.Greater(t, delay, time.Hour)

	for _, c := range cr.contents {
		assert.Equal(t, models.ContentStatusScheduled, c.Status)
	}
	assert.Len(t, pr.posts, 2)
	for _, id := range postIDs {
		post, err := pr.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, models.PostStatusScheduled, post.Status)
	}
}

func TestSchedulePostPastTimeClampsDelayToZero(t *testing.T) {
	svc, _, _, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo, "u", []string{"TikTok"}, "s")
	require.NoError(t, err)

	when := time.Now().Add(-time.Hour).Format(time.RFC3339)
	_, delay, err := svc.SchedulePost(context.Background(), []int64{created[0].ID}, when)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), delay)
}

func TestSchedulePostUnknownContentAbortsBeforeMutation(t *testing.T) {
	svc, cr, pr, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo, "u", []string{"TikTok"}, "s")
	require.NoError(t, err)

	when := time.Now().Add(time.Hour).Format(time.RFC3339)
	_, _, err = svc.SchedulePost(context.Background(), []int64{created[0].ID, 999}, when)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, pr.posts)
	assert.Equal(t, models.ContentStatusDraft, cr.contents[created[0].ID].Status)
}

func TestSchedulePostInvalidTime(t *testing.T) {
	svc, _, pr, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo, "u", []string{"TikTok"}, "s")
	require.NoError(t, err)

	_, _, err = svc.SchedulePost(context.Background(), []int64{created[0].ID}, "tomorrow at noon")
	assert.Error(t, err)
	assert.Empty(t, pr.posts)
}

func TestCancelPostRestoresDraft(t *testing.T) {
	svc, cr, pr, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo, "u", []string{"TikTok"}, "s")
	require.NoError(t, err)

	when := time.Now().Add(time.Hour).Format(time.RFC3339)
	postIDs, _, err := svc.SchedulePost(context.Background(), []int64{created[0].ID}, when)
	require.NoError(t, err)

	require.NoError(t, svc.CancelPost(context.Background(), postIDs[0]))

	assert.Empty(t, pr.posts)
	assert.Equal(t, models.ContentStatusDraft, cr.contents[created[0].ID].Status)
}

func TestCancelPostUnknownIDLeavesStateUntouched(t *testing.T) {
	svc, cr, pr, _ := contentFixture(t)

	created, err := svc.SaveContent(context.Background(), 1, models.MediaTypeVideo, "u", []string{"TikTok"}, "s")
	require.NoError(t, err)

	when := time.Now().Add(time.Hour).Format(time.RFC3339)
	_, _, err = svc.SchedulePost(context.Background(), []int64{created[0].ID}, when)
	require.NoError(t, err)

	err = svc.CancelPost(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, pr.posts, 1)
	assert.Equal(t, models.ContentStatusScheduled, cr.contents[created[0].ID].Status)
}

func TestUpdateScriptKeepsAnalyticsCounters(t *testing.T) {
	svc, cr, _, _ := contentFixture(t)

	id, err := cr.Create(context.Background(), &models.GeneratedContent{
		ItemID:   1,
		Platform: "TikTok",
		Script:   "old",
		Status:   models.ContentStatusDraft,
		Metrics:  models.EncodeMetrics(models.ContentMetrics{Script: "old", Views: 1200, Likes: 80}),
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateScript(context.Background(), id, "new script"))

	stored := cr.contents[id]
	assert.Equal(t, "new script", stored.Script)
	metrics := models.DecodeMetrics(stored.Metrics)
	assert.Equal(t, "new script", metrics.Script)
	assert.Equal(t, int64(1200), metrics.Views)
	assert.Equal(t, int64(80), metrics.Likes)
}

func TestUpdateMediaUnknownContent(t *testing.T) {
	svc, _, _, _ := contentFixture(t)

	err := svc.UpdateMedia(context.Background(), 77, "https://cdn.example.com/new.mp4")
	assert.ErrorIs(t, err, ErrNotFound)
}
