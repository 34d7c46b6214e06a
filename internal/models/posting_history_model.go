package models

import "time"

type PostingHistory struct {
	ID           int64     `db:"id" json:"id"`
	PostID       string    `db:"post_id" json:"post_id"`
	Platform     Platform  `db:"platform" json:"platform"`
	Success      bool      `db:"success" json:"success"`
	RemoteID     string    `db:"remote_id" json:"remote_id"`
	URL          string    `db:"url" json:"url"`
	ErrorMessage string    `db:"error_message" json:"error_message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func NewPostingHistory(postID string, result *PostResult) *PostingHistory {
	return &PostingHistory{
		PostID:       postID,
		Platform:     result.Platform,
		Success:      result.Success,
		RemoteID:     result.PostID,
		URL:          result.URL,
		ErrorMessage: result.Error,
	}
}
