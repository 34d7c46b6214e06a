package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/maheshrc27/postflow-tools/internal/models"
)

// Platform is one social network the server can dispatch to.
type Platform interface {
	Name() models.Platform
	Post(ctx context.Context, post *models.Post) (*models.PostResult, error)
	Analytics(ctx context.Context, query models.AnalyticsQuery) (*models.Analytics, error)
	Trending(ctx context.Context, category, location string) ([]models.TrendingTopic, error)
	Schedule(ctx context.Context, post *models.Post, at time.Time) (*models.PostResult, error)
	Delete(ctx context.Context, postID string) error
	Get(ctx context.Context, postID string) (*models.RemotePost, error)
}

type MediaService interface {
	NormalizeImage(ctx context.Context, path string, platforms []models.Platform) (string, error)
	NormalizeVideo(ctx context.Context, path string, platforms []models.Platform) (string, error)
}

type MediaStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type PostingHistoryStore interface {
	Create(ctx context.Context, ph *models.PostingHistory) (int64, error)
}

type EventPublisher interface {
	PublishDispatch(ctx context.Context, event *models.DispatchEvent) error
}

type ScheduleEnqueuer interface {
	EnqueueScheduledPost(ctx context.Context, scheduledPostID string, at time.Time) error
}
