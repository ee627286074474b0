package models

import (
	"encoding/json"
	"time"
)

// GeneratedContent is one platform-specific rendered content unit. Script
// lives in a dedicated column; the performance_metrics blob still carries a
// "script" key so rows written by earlier revisions keep reading correctly.
type GeneratedContent struct {
	ID        int64     `db:"id" json:"id"`
	ItemID    int64     `db:"item_id" json:"item_id"`
	Type      string    `db:"type" json:"type"`
	URL       string    `db:"url" json:"url"`
	Platform  string    `db:"platform" json:"platform"`
	Script    string    `db:"script" json:"script"`
	Status    string    `db:"status" json:"status"`
	Metrics   string    `db:"performance_metrics" json:"performance_metrics"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const (
	ContentStatusDraft     = "DRAFT"
	ContentStatusScheduled = "SCHEDULED"

	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)

// ContentMetrics is the structured form of the performance_metrics blob.
type ContentMetrics struct {
	Script   string `json:"script"`
	Views    int64  `json:"views,omitempty"`
	Likes    int64  `json:"likes,omitempty"`
	Comments int64  `json:"comments,omitempty"`
	Shares   int64  `json:"shares,omitempty"`
}

func EncodeMetrics(m ContentMetrics) string {
	raw, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// DecodeMetrics never fails: malformed or empty blobs decode to the zero
// value so a bad row cannot break a read path.
func DecodeMetrics(raw string) ContentMetrics {
	var m ContentMetrics
	if raw == "" {
		return m
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return ContentMetrics{}
	}
	return m
}

// EffectiveScript prefers the dedicated column and falls back to the script
// stored inside the metrics blob by earlier revisions.
func (c *GeneratedContent) EffectiveScript() string {
	if c.Script != "" {
		return c.Script
	}
	return DecodeMetrics(c.Metrics).Script
}
