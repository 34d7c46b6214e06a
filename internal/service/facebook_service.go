package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	cfg "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/models"
	"github.com/maheshrc27/postflow-tools/internal/transfer"
)

var facebookMetricNames = map[string]string{
	"post_impressions":      models.MetricImpressions,
	"post_engaged_users":    models.MetricEngagement,
	"page_impressions":      models.MetricImpressions,
	"page_post_engagements": models.MetricEngagement,
}

type facebookService struct {
	api    *apiClient
	pageID string
}

func NewFacebookService(c cfg.Facebook, timeout time.Duration) Platform {
	return newFacebookService(bearerClient(c.AccessToken, timeout), GRAPH_API_URL, c.PageID)
}

func newFacebookService(httpClient *http.Client, baseURL, pageID string) *facebookService {
	return &facebookService{
		api:    &apiClient{platform: models.PlatformFacebook, http: httpClient, baseURL: baseURL},
		pageID: pageID,
	}
}

func (s *facebookService) Name() models.Platform {
	return models.PlatformFacebook
}

func (s *facebookService) Post(ctx context.Context, post *models.Post) (*models.PostResult, error) {
	message := FormatCaption(post, models.PlatformFacebook)

	endpoint := "/" + s.pageID + "/feed"
	payload := map[string]any{"message": message}

	for _, m := range post.Media {
		if m.Type == models.MediaTypeImage && m.URL != "" {
			endpoint = "/" + s.pageID + "/photos"
			payload = map[string]any{"url": m.URL, "caption": message}
			break
		}
	}

	var result transfer.GraphIDResponse
	if _, err := s.api.do(ctx, http.MethodPost, endpoint, payload, &result, nil); err != nil {
		return nil, fmt.Errorf("failed to create Facebook post: %w", err)
	}

	id := result.PostID
	if id == "" {
		id = result.ID
	}
	if id == "" {
		return nil, fmt.Errorf("no post ID returned from Facebook")
	}

	return &models.PostResult{
		Success:   true,
		Platform:  models.PlatformFacebook,
		PostID:    id,
		URL:       "https://www.facebook.com/" + id,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *facebookService) Analytics(ctx context.Context, query models.AnalyticsQuery) (*models.Analytics, error) {
	metrics := map[string]int64{
		models.MetricImpressions: 0,
		models.MetricEngagement:  0,
	}

	if len(query.PostIDs) > 0 {
		for _, id := range query.PostIDs {
			m, err := insights(ctx, s.api, id, "post_impressions,post_engaged_users", nil, facebookMetricNames)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch Facebook insights for %s: %w", id, err)
			}
			mergeMetrics(metrics, m)
		}
	} else {
		params := dateRangeParams(query.DateRange)
		params.Set("period", "day")
		m, err := insights(ctx, s.api, s.pageID, "page_impressions,page_post_engagements", params, facebookMetricNames)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch Facebook page insights: %w", err)
		}
		mergeMetrics(metrics, m)
	}

	return &models.Analytics{
		Platform:  models.PlatformFacebook,
		Metrics:   metrics,
		DateRange: query.DateRange,
		PostIDs:   query.PostIDs,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Trending is always empty: Facebook retired its trending topics API.
func (s *facebookService) Trending(ctx context.Context, category, location string) ([]models.TrendingTopic, error) {
	return []models.TrendingTopic{}, nil
}

func (s *facebookService) Schedule(ctx context.Context, post *models.Post, at time.Time) (*models.PostResult, error) {
	return scheduleAck(models.PlatformFacebook, at), nil
}

func (s *facebookService) Delete(ctx context.Context, postID string) error {
	if _, err := s.api.do(ctx, http.MethodDelete, "/"+url.PathEscape(postID), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete Facebook post %s: %w", postID, err)
	}
	return nil
}

func (s *facebookService) Get(ctx context.Context, postID string) (*models.RemotePost, error) {
	var post transfer.FacebookPost
	path := "/" + url.PathEscape(postID) + "?fields=id,message,created_time,permalink_url"
	if _, err := s.api.do(ctx, http.MethodGet, path, nil, &post, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch Facebook post %s: %w", postID, err)
	}

	return &models.RemotePost{
		ID:        post.ID,
		Platform:  models.PlatformFacebook,
		Text:      post.Message,
		URL:       post.PermalinkURL,
		CreatedAt: post.CreatedTime,
	}, nil
}
