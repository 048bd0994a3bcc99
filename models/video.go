package models

import "time"

// Video represents an embeddable video entry (YouTube, TikTok, ...)
type Video struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	URL         string    `json:"url" db:"url"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
