package models

import "time"

type SocialAccount struct {
	ID          int64     `db:"id" json:"id"`
	Platform    string    `db:"platform" json:"platform"`
	Credentials string    `db:"credentials" json:"-"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const SocialAccountConnected = "CONNECTED"
