package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	cfg "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

const (
	containerPollAttempts = 20
	maxCarouselItems      = 10
)

var (
	ErrInstagramNeedsMedia = errors.New("instagram posts require at least one image or video")
	ErrInstagramNeedsURL   = errors.New("instagram media must be reachable by URL; configure R2 storage")
)

type instagramService struct {
	api          *apiClient
	businessID   string
	pollInterval time.Duration
}

func NewInstagramService(c cfg.Instagram, timeout time.Duration) Platform {
	return newInstagramService(bearerClient(c.AccessToken, timeout), GRAPH_API_URL, c.BusinessID, 3*time.Second)
}

func newInstagramService(httpClient *http.Client, baseURL, businessID string, pollInterval time.Duration) *instagramService {
	return &instagramService{
		api:          &apiClient{platform: models.PlatformInstagram, http: httpClient, baseURL: baseURL},
		businessID:   businessID,
		pollInterval: pollInterval,
	}
}

func (s *instagramService) Name() models.Platform {
	return models.PlatformInstagram
}

func (s *instagramService) Post(ctx context.Context, post *models.Post) (*models.PostResult, error) {
	if len(post.Media) == 0 {
		return nil, ErrInstagramNeedsMedia
	}
	for _, m := range post.Media {
		if m.URL == "" {
			return nil, ErrInstagramNeedsURL
		}
	}

	caption := FormatCaption(post, models.PlatformInstagram)

	var containerID string
	var err error
	if len(post.Media) == 1 {
		containerID, err = s.createContainer(ctx, post.Media[0], caption, false)
		if err != nil {
			return nil, fmt.Errorf("failed to create Instagram media container: %w", err)
		}
	} else {
		containerID, err = s.createCarousel(ctx, post.Media, caption)
		if err != nil {
			return nil, fmt.Errorf("failed to create Instagram carousel: %w", err)
		}
	}

	if err := s.waitUntilReady(ctx, containerID); err != nil {
		return nil, err
	}

	mediaID, err := s.publish(ctx, containerID)
	if err != nil {
		return nil, err
	}

	result := &models.PostResult{
		Success:   true,
		Platform:  models.PlatformInstagram,
		PostID:    mediaID,
		Timestamp: time.Now().UTC(),
	}
	if media, err := s.fetchMedia(ctx, mediaID); err == nil {
		result.URL = media.Permalink
	}

	return result, nil
}

func (s *instagramService) createContainer(ctx context.Context, media models.MediaAsset, caption string, carouselItem bool) (string, error) {
	payload := map[string]any{}
	if media.Type == models.MediaTypeVideo {
		payload["video_url"] = media.URL
		payload["media_type"] = "REELS"
		if carouselItem {
			payload["media_type"] = "VIDEO"
		}
	} else {
		payload["image_url"] = media.URL
	}
	if carouselItem {
		payload["is_carousel_item"] = true
	} else {
		payload["caption"] = caption
	}

	var result transfer.GraphIDResponse
	if _, err := s.api.do(ctx, http.MethodPost, "/"+s.businessID+"/media", payload, &result, nil); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("no media ID returned from Instagram")
	}

	return result.ID, nil
}

func (s *instagramService) createCarousel(ctx context.Context, media []models.MediaAsset, caption string) (string, error) {
	if len(media) > maxCarouselItems {
		slog.Info("instagram carousel truncated", "items", len(media), "max", maxCarouselItems)
		media = media[:maxCarouselItems]
	}

	containerIDs := make([]string, 0, len(media))
	for _, m := range media {
		id, err := s.createContainer(ctx, m, "", true)
		if err != nil {
			return "", err
		}
		containerIDs = append(containerIDs, id)
	}

	payload := map[string]any{
		"media_type": "CAROUSEL",
		"caption":    caption,
		"children":   containerIDs,
	}

	var result transfer.GraphIDResponse
	if _, err := s.api.do(ctx, http.MethodPost, "/"+s.businessID+"/media", payload, &result, nil); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("no media ID returned from Instagram")
	}

	return result.ID, nil
}

// waitUntilReady polls the container until Instagram has processed it.
func (s *instagramService) waitUntilReady(ctx context.Context, containerID string) error {
	for attempt := 0; attempt < containerPollAttempts; attempt++ {
		var status struct {
			StatusCode string `json:"status_code"`
		}
		if _, err := s.api.do(ctx, http.MethodGet, "/"+containerID+"?fields=status_code", nil, &status, nil); err != nil {
			return fmt.Errorf("failed to check Instagram container status: %w", err)
		}

		switch status.StatusCode {
		case "", "FINISHED", "PUBLISHED":
			return nil
		case "ERROR", "EXPIRED":
			return fmt.Errorf("instagram container %s is %s", containerID, status.StatusCode)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}

	return fmt.Errorf("instagram container %s was not ready in time", containerID)
}

func (s *instagramService) publish(ctx context.Context, containerID string) (string, error) {
	payload := map[string]string{"creation_id": containerID}

	var result transfer.GraphIDResponse
	if _, err := s.api.do(ctx, http.MethodPost, "/"+s.businessID+"/media_publish", payload, &result, nil); err != nil {
		return "", fmt.Errorf("failed to publish Instagram post: %w", err)
	}
	if result.ID == "" {
		return "", fmt.Errorf("no media ID returned from Instagram publish")
	}

	return result.ID, nil
}

func (s *instagramService) fetchMedia(ctx context.Context, mediaID string) (*transfer.InstagramMedia, error) {
	var media transfer.InstagramMedia
	path := "/" + url.PathEscape(mediaID) + "?fields=id,caption,media_type,permalink,timestamp"
	if _, err := s.api.do(ctx, http.MethodGet, path, nil, &media, nil); err != nil {
		return nil, err
	}
	return &media, nil
}

func (s *instagramService) Analytics(ctx context.Context, query models.AnalyticsQuery) (*models.Analytics, error) {
	metrics := map[string]int64{
		models.MetricImpressions: 0,
		models.MetricEngagement:  0,
	}

	if len(query.PostIDs) > 0 {
		for _, id := range query.PostIDs {
			m, err := insights(ctx, s.api, id, "impressions,reach,engagement", nil, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch Instagram insights for %s: %w", id, err)
			}
			mergeMetrics(metrics, m)
		}
	} else {
		params := dateRangeParams(query.DateRange)
		params.Set("period", "day")
		m, err := insights(ctx, s.api, s.businessID, "impressions,reach", params, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch Instagram account insights: %w", err)
		}
		mergeMetrics(metrics, m)
	}

	return &models.Analytics{
		Platform:  models.PlatformInstagram,
		Metrics:   metrics,
		DateRange: query.DateRange,
		PostIDs:   query.PostIDs,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Trending is always empty: the Graph API exposes no trending hashtags.
func (s *instagramService) Trending(ctx context.Context, category, location string) ([]models.TrendingTopic, error) {
	return []models.TrendingTopic{}, nil
}

func (s *instagramService) Schedule(ctx context.Context, post *models.Post, at time.Time) (*models.PostResult, error) {
	return scheduleAck(models.PlatformInstagram, at), nil
}

func (s *instagramService) Delete(ctx context.Context, postID string) error {
	return errors.New("instagram does not support deleting media through the API")
}

func (s *instagramService) Get(ctx context.Context, postID string) (*models.RemotePost, error) {
	media, err := s.fetchMedia(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Instagram media %s: %w", postID, err)
	}

	return &models.RemotePost{
		ID:        media.ID,
		Platform:  models.PlatformInstagram,
		Text:      media.Caption,
		URL:       media.Permalink,
		CreatedAt: media.Timestamp,
	}, nil
}
