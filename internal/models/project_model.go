package models

import (
	"database/sql"
	"time"
)

type Project struct {
	ID               int64         `db:"id" json:"id"`
	Title            string        `db:"title" json:"title"`
	Description      string        `db:"description" json:"description"`
	Emoji            string        `db:"emoji" json:"emoji"`
	PersonaID        sql.NullInt64 `db:"persona_id" json:"persona_id"`
	AutopilotEnabled bool          `db:"autopilot_enabled" json:"autopilot_enabled"`
	PostsPerDay      int           `db:"posts_per_day" json:"posts_per_day"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at" json:"updated_at"`
}
