package models

import "time"

// Post schedules exactly one GeneratedContent for publication. A Post row
// exists iff its content is SCHEDULED; cancellation deletes the row and
// resets the content to DRAFT.
type Post struct {
	ID            int64     `db:"id" json:"id"`
	ContentID     int64     `db:"content_id" json:"content_id"`
	ScheduledTime time.Time `db:"scheduled_time" json:"scheduled_time"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

const PostStatusScheduled = "SCHEDULED"
