package queue

import (
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

// Queue holds the dependencies of the delivery worker.
type Queue struct {
	pr  repository.PostRepository
	cr  repository.ContentRepository
	phr repository.PostingHistoryRepository
	ss  service.SocialService
}

func NewQueue(
	pr repository.PostRepository,
	cr repository.ContentRepository,
	phr repository.PostingHistoryRepository,
	ss service.SocialService) *Queue {
	return &Queue{
		pr:  pr,
		cr:  cr,
		phr: phr,
		ss:  ss,
	}
}

const TaskTypeDeliverPost = "deliver:post"

type DeliverPostPayload struct {
	PostID int64 `json:"post_id"`
}
