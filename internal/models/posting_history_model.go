package models

import "time"

// PostingHistory records one delivery attempt for a scheduled post. It is
// append-only; delivery never transitions the post or content status.
type PostingHistory struct {
	ID             int64     `db:"id" json:"id"`
	PostID         int64     `db:"post_id" json:"post_id"`
	ContentID      int64     `db:"content_id" json:"content_id"`
	Platform       string    `db:"platform" json:"platform"`
	PlatformPostID string    `db:"platform_post_id" json:"platform_post_id"`
	ErrorMessage   string    `db:"error_message" json:"error_message"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
