package queue

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

func (q *Queue) HandleDeliverPostTask(ctx context.Context, task *asynq.Task) error {
	var payload DeliverPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}
	return q.DeliverPost(ctx, payload.PostID)
}

// DeliverPost publishes one scheduled post and records the attempt. A post
// that no longer exists was cancelled after enqueueing; the task is dropped
// silently. Delivery never mutates the post or content status: scheduling
// stays the final modeled transition.
func (q *Queue) DeliverPost(ctx context.Context, postID int64) error {
	post, err := q.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		log.Printf("Post %d gone before delivery, skipping", postID)
		return nil
	}

	content, err := q.cr.GetByID(ctx, post.ContentID)
	if err != nil {
		return err
	}
	if content == nil {
		log.Printf("Content %d gone before delivery of post %d, skipping", post.ContentID, postID)
		return nil
	}

	history := models.PostingHistory{
		PostID:    postID,
		ContentID: content.ID,
		Platform:  content.Platform,
	}

	platformPostID, err := q.ss.PublishPost(ctx, content.Platform, content.URL, content.EffectiveScript())
	if err != nil {
		history.ErrorMessage = err.Error()
		log.Printf("Error publishing post %d to %s: %v", postID, content.Platform, err)
	} else {
		history.PlatformPostID = platformPostID
	}

	if _, err := q.phr.Create(ctx, &history); err != nil {
		log.Printf("Error saving posting history for post %d: %v", postID, err)
	}
	return nil
}
