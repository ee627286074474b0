package transfer

import "time"

type SaveContentRequest struct {
	ItemID    int64    `json:"item_id"`
	Type      string   `json:"type"`
	URL       string   `json:"url"`
	Platforms []string `json:"platforms"`
	Script    string   `json:"script"`
}

type SchedulePostRequest struct {
	ContentIDs    []int64 `json:"content_ids"`
	ScheduledTime string  `json:"scheduled_time"`
}

type CancelPostRequest struct {
	PostID int64 `json:"post_id"`
}

type UpdateScriptRequest struct {
	ContentID int64  `json:"content_id"`
	Script    string `json:"script"`
}

type UpdateMediaRequest struct {
	ContentID int64  `json:"content_id"`
	URL       string `json:"url"`
}

type ScheduledEntry struct {
	PostID        int64     `json:"post_id"`
	ContentID     int64     `json:"content_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Platform      string    `json:"platform"`
	MediaType     string    `json:"media_type"`
	URL           string    `json:"url"`
	Script        string    `json:"script"`
	ItemName      string    `json:"item_name"`
	ProjectEmoji  string    `json:"project_emoji"`
}

type CalendarDay struct {
	Date  string            `json:"date"`
	Posts []*ScheduledEntry `json:"posts"`
}
