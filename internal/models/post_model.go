package models

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Post struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Media         []MediaAsset `json:"media"`
	Hashtags      []string     `json:"hashtags"`
	Mentions      []string     `json:"mentions,omitempty"`
	Platforms     []Platform   `json:"platforms"`
	ScheduledTime *time.Time   `json:"scheduled_time,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

type MediaAsset struct {
	Type            MediaType `json:"type"`
	Path            string    `json:"path"`
	AltText         string    `json:"alt_text,omitempty"`
	URL             string    `json:"url,omitempty"` // public URL once uploaded to the media store
	DurationSeconds float64   `json:"duration,omitempty"`
	Width           int       `json:"width,omitempty"`
	Height          int       `json:"height,omitempty"`
}

// PostResult is the outcome of one platform dispatch. Schedule
// acknowledgements reuse it with Scheduled set.
type PostResult struct {
	Success         bool       `json:"success"`
	Platform        Platform   `json:"platform,omitempty"`
	PostID          string     `json:"post_id,omitempty"`
	URL             string     `json:"url,omitempty"`
	Error           string     `json:"error,omitempty"`
	Scheduled       bool       `json:"scheduled,omitempty"`
	ScheduledTime   *time.Time `json:"scheduled_time,omitempty"`
	ScheduledPostID string     `json:"scheduled_post_id,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
}

func FailedResult(platform Platform, msg string) *PostResult {
	return &PostResult{
		Success:   false,
		Platform:  platform,
		Error:     msg,
		Timestamp: time.Now().UTC(),
	}
}

// RemotePost is a post as the platform reports it back.
type RemotePost struct {
	ID        string         `json:"id"`
	Platform  Platform       `json:"platform"`
	Text      string         `json:"text,omitempty"`
	URL       string         `json:"url,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	Raw       map[string]any `json:"raw,omitempty"`
}

// DispatchEvent is emitted once per platform outcome.
type DispatchEvent struct {
	PostID    string      `json:"post_id"`
	Result    *PostResult `json:"result"`
	Timestamp time.Time   `json:"timestamp"`
}
